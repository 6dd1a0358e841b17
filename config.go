// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xrefcheck

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdf-xrefcheck/logger"
)

type Config struct {
	MaxConcurrentFiles int           `validate:"min=1,max=64"`
	FileTimeout        time.Duration `validate:"required"`
	// MaxFileSize in bytes; 0 means no limit.
	MaxFileSize int64 `validate:"min=0"`
	DebugOn     bool
	Logger      logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentFiles: 4,
		FileTimeout:        30 * time.Second,
		MaxFileSize:        0,
		DebugOn:            false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
