// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mdhender/wlparse/internal/cache"
	"github.com/spf13/cobra"
)

var argsCacheInfo struct {
	path string
}

var cmdCacheInfo = &cobra.Command{
	Use:   "cache-info",
	Short: "Report statistics about the parse-result cache database",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(argsCacheInfo.path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		front, err := cache.NewFront(store, cache.DefaultLRUSize)
		if err != nil {
			return err
		}
		line, err := front.InfoLine(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, line)
		return nil
	},
}
