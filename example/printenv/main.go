// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command printenv demonstrates the dotconf API: it parses a dotenv file,
// renders the entries as a table and resolves single keys with typed
// conversions.
package main

import (
	"fmt"
	"os"

	"github.com/z5labs/dotconf"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "printenv",
		Short: "Inspect dotenv files with dotconf",
	}
	root.PersistentFlags().String("file", dotconf.DefaultPath, "dotenv file to read")
	root.AddCommand(printCmd(), getCmd())

	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func printCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Parse the file and print its entries without touching the environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}

			entries, err := dotconf.ParseFile(path)
			if err != nil {
				return err
			}

			headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
			tbl := table.New("Key", "Value")
			tbl.WithHeaderFormatter(headerFmt)
			for _, e := range entries {
				tbl.AddRow(e.Key, e.Value)
			}
			tbl.Print()
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Load the file into the environment and resolve one key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}

			err = dotconf.LoadFile(path)
			if err != nil {
				return err
			}

			v := dotconf.Var(args[0])
			var ok bool
			var out any
			switch as {
			case "string":
				out, ok = v.AsString()
			case "int":
				out, ok = v.AsInt64()
			case "uint":
				out, ok = v.AsUint64()
			case "float":
				out, ok = v.AsFloat64()
			case "bool":
				out, ok = v.AsBool()
			default:
				return fmt.Errorf("unknown conversion: %q", as)
			}
			if !ok {
				fmt.Println(color.RedString("%s: not set or not a %s", args[0], as))
				return nil
			}

			fmt.Printf("%s = %s\n", color.CyanString(args[0]), color.GreenString("%v", out))
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "string", "conversion to apply: string, int, uint, float or bool")
	return cmd
}
