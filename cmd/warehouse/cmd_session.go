package main

import (
	"github.com/spf13/cobra"

	"github.com/vkarsten/warehouse-management-system/pkg/interfaces/cli/session"
	"github.com/vkarsten/warehouse-management-system/pkg/logger"
)

// runSession starts the interactive browsing loop
func runSession(cmd *cobra.Command, args []string) error {
	s := session.New(queries, orders, logger.Named(rootLogger, "session"))
	return s.Run(cmd.Context())
}
