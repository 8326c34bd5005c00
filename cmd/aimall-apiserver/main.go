/*
Copyright 2025-2026 the Aimall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/aimall-cloud/commerce/pkg/constants"
	"github.com/aimall-cloud/commerce/pkg/server"
)

func main() {
	var options server.Options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer logger.Sync() //nolint:errcheck

	logger.Info("service starting",
		zap.String("application", constants.Application),
		zap.String("version", constants.Version),
		zap.String("revision", constants.Revision),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	service, err := server.New(&options, logger)
	if err != nil {
		logger.Error("service initialization failed", zap.Error(err))
		os.Exit(1)
	}

	// Live test runs against this process authenticate admin operations
	// with this token via API_ADMIN_TOKEN.
	logger.Info("admin token issued", zap.String("token", service.AdminToken()))

	if err := service.Run(ctx); err != nil {
		logger.Error("service exited", zap.Error(err))
		os.Exit(1)
	}
}
