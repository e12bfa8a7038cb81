package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/yaroher/go-names/escape"
	"github.com/yaroher/go-names/logger"
	"github.com/yaroher/go-names/names"
	"github.com/yaroher/go-names/settings"
)

const settingsEnv = "GO_NAMES_SETTINGS"

type cli struct {
	params   string
	settings *settings.Settings
}

func (c *cli) parse(s string) (names.Name, error) {
	return names.Parse(s, c.settings.Options()...)
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "go-names",
		Short:         "Parse, render and serialize delimited hierarchical names",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings.Parse(c.params)
			if err != nil {
				return err
			}
			c.settings = s
			logger.Debug("command",
				zap.String("name", cmd.Name()),
				zap.String("delimiter", string(s.Delimiter)),
				zap.Stringer("strategy", s.Strategy),
			)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.params, "settings", os.Getenv(settingsEnv),
		"comma separated key=value settings (delimiter, strategy); defaults to $"+settingsEnv)

	root.AddCommand(
		c.renderCmd(),
		c.dataCmd(),
		c.decodeCmd(),
		c.componentsCmd(),
		c.hashCmd(),
		c.equalCmd(),
	)
	return root
}

func (c *cli) renderCmd() *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Print NAME for humans, optionally with another delimiter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parse(args[0])
			if err != nil {
				return err
			}
			d := n.Delimiter()
			if as != "" {
				var ok bool
				if d, ok = escape.ParseDelimiter(as); !ok {
					return fmt.Errorf("--as must be a single character other than %q", escape.Character)
				}
			}
			out, err := n.AsString(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "delimiter used for rendering")
	return cmd
}

func (c *cli) dataCmd() *cobra.Command {
	var proto bool
	cmd := &cobra.Command{
		Use:   "data NAME",
		Short: "Print the lossless data string of NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parse(args[0])
			if err != nil {
				return err
			}
			if !proto {
				fmt.Fprintln(cmd.OutOrStdout(), n.DataString())
				return nil
			}
			pb, err := names.ToStruct(n)
			if err != nil {
				return err
			}
			out, err := protojson.Marshal(pb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&proto, "proto", false, "emit the record as protobuf Struct JSON")
	return cmd
}

func (c *cli) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode DATA",
		Short: "Rebuild a name from its data string and render it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := names.ParseDataString(args[0], names.WithStrategy(c.settings.Strategy))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.String())
			return nil
		},
	}
}

func (c *cli) componentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "components NAME",
		Short: "Print the components of NAME, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parse(args[0])
			if err != nil {
				return err
			}
			if n.IsEmpty() {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(n.Components(), "\n"))
			return nil
		},
	}
}

func (c *cli) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash NAME",
		Short: "Print the hash code of NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", n.HashCode())
			return nil
		},
	}
}

func (c *cli) equalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Report whether two names are equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.parse(args[0])
			if err != nil {
				return err
			}
			b, err := c.parse(args[1])
			if err != nil {
				return err
			}
			eq, err := a.Equal(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eq)
			return nil
		},
	}
}

func main() {
	defer func() { _ = logger.Logger.Sync() }()
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
