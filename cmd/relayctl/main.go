// Command relayctl inspects the opaque tokens produced by the relay
// packages: pagination cursors and node identifiers. Useful when debugging
// what a client is actually sending in `after` arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ncobase/relay/cursor"
	"github.com/ncobase/relay/identifier"
	"github.com/ncobase/relay/version"
)

func main() {
	root := &cobra.Command{
		Use:           "relayctl",
		Short:         "Inspect relay pagination cursors and node identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(cursorCmd(), idCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func cursorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cursor",
		Short: "Encode and decode pagination cursors",
	}
	cmd.AddCommand(cursorDecodeCmd(), cursorEncodeCmd())
	return cmd
}

func cursorDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode an opaque cursor token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cursor.DecodeAny(args[0])
			if err != nil {
				return err
			}
			switch c := c.(type) {
			case cursor.OffsetCursor:
				cmd.Printf("kind:   %s\n", cursor.KindOffset)
				cmd.Printf("offset: %d\n", c.Offset)
				if c.First != nil {
					cmd.Printf("first:  %d\n", *c.First)
				}
			case cursor.StringCursor:
				cmd.Printf("kind:  %s\n", cursor.KindString)
				cmd.Printf("value: %s\n", c.Value)
			default:
				cmd.Printf("raw: %s\n", c.Raw())
			}
			return nil
		},
	}
}

func cursorEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a cursor into its opaque token",
	}

	var offset, first int
	offsetCmd := &cobra.Command{
		Use:   "offset",
		Short: "Encode an offset cursor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cursor.OffsetCursor{Offset: offset}
			if cmd.Flags().Changed("first") {
				c.First = &first
			}
			cmd.Println(cursor.Encode(c))
			return nil
		},
	}
	offsetCmd.Flags().IntVar(&offset, "offset", 0, "zero-based item offset")
	offsetCmd.Flags().IntVar(&first, "first", 0, "page size at issuance")

	var value string
	stringCmd := &cobra.Command{
		Use:   "string",
		Short: "Encode a string cursor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(cursor.Encode(cursor.StringCursor{Value: value}))
			return nil
		},
	}
	stringCmd.Flags().StringVar(&value, "value", "", "opaque cursor key")
	_ = stringCmd.MarkFlagRequired("value")

	cmd.AddCommand(offsetCmd, stringCmd)
	return cmd
}

func versionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetVersionInfo()
			if asJSON {
				out, err := info.JSON()
				if err != nil {
					return err
				}
				cmd.Println(out)
				return nil
			}
			cmd.Println(info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func idCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Encode and decode node identifiers",
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a node identifier token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identifier.Parse(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("kind: %s\n", id.Kind)
			cmd.Printf("id:   %s\n", id.ID)
			return nil
		},
	}

	var rawID, kind string
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a node identifier into its opaque token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(identifier.New(rawID, kind).Encode())
			return nil
		},
	}
	encodeCmd.Flags().StringVar(&rawID, "id", "", "raw identifier")
	encodeCmd.Flags().StringVar(&kind, "kind", "", "type discriminator")
	_ = encodeCmd.MarkFlagRequired("id")
	_ = encodeCmd.MarkFlagRequired("kind")

	cmd.AddCommand(decodeCmd, encodeCmd)
	return cmd
}
