// attrcat is a wire-debugging tool for the attribute protocol: it turns
// command-line pairs into an encoded attribute list on stdout, and turns
// an encoded list on stdin back into readable text.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mailwire/internal/attr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "attrcat: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "attrcat",
		Short:         "Encode and decode attribute lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEncodeCmd(), newDecodeCmd())
	return root
}

func newEncodeCmd() *cobra.Command {
	var more bool
	cmd := &cobra.Command{
		Use:   "encode [name=text | name:=number ...]",
		Short: "Write an encoded attribute list to stdout",
		Long: "Each argument becomes one attribute: name=value carries text,\n" +
			"name:=value carries an unsigned number.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parsePairs(args)
			if err != nil {
				return err
			}
			flags := attr.FlagNone
			if more {
				flags = attr.FlagMore
			}
			out := bufio.NewWriter(cmd.OutOrStdout())
			if err := attr.WriteList(out, flags, attrs...); err != nil {
				return err
			}
			return out.Flush()
		},
	}
	cmd.Flags().BoolVar(&more, "more", false, "leave the list open for further encode calls")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Read one encoded attribute list from stdin and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := attr.ReadList(bufio.NewReader(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			for _, a := range attrs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", a.Name(), a.Text())
			}
			return nil
		},
	}
}

func parsePairs(args []string) ([]attr.Attribute, error) {
	attrs := make([]attr.Attribute, 0, len(args))
	for _, arg := range args {
		eq := strings.Index(arg, "=")
		if eq < 0 {
			return nil, fmt.Errorf("argument %q is not name=value", arg)
		}
		name, value := arg[:eq], arg[eq+1:]
		if strings.HasSuffix(name, ":") {
			name = strings.TrimSuffix(name, ":")
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %q is not an unsigned number", arg, value)
			}
			attrs = append(attrs, attr.Number(name, n))
			continue
		}
		attrs = append(attrs, attr.Text(name, value))
	}
	return attrs, nil
}
