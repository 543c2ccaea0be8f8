// Command aillctl is an operator inspection tool for the AILL
// codebook and session handshake. It inspects already-built
// codebook/session state; it does not drive a simulated exchange.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmpatri615/aill/codebook"
	"github.com/jmpatri615/aill/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aillctl",
		Short: "Inspect the AILL codebook registry and compute session handshakes",
	}
	root.AddCommand(newCodebookCmd())
	root.AddCommand(newNegotiateCmd())
	return root
}

func newCodebookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codebook <code>",
		Short: "Look up a base codebook entry by byte value (decimal or 0x-prefixed hex)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return fmt.Errorf("aillctl: invalid code %q: %w", args[0], err)
			}
			entry := codebook.Lookup(byte(v))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"code":     fmt.Sprintf("0x%02X", entry.Code),
				"mnemonic": entry.Mnemonic,
				"category": entry.Category.String(),
			})
		},
	}
}

func newNegotiateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negotiate <capsA.json> <capsB.json> <channel.json>",
		Short: "Compute the negotiated SessionParams for two peers over one channel",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b session.AgentCapabilities
			var ch session.ChannelConfig
			if err := readJSON(args[0], &a); err != nil {
				return err
			}
			if err := readJSON(args[1], &b); err != nil {
				return err
			}
			if err := readJSON(args[2], &ch); err != nil {
				return err
			}
			params := session.Negotiate(a, b, ch.Characterize())
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(params)
		},
	}
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("aillctl: %w", err)
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}
