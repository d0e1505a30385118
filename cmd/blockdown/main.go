// Command blockdown works with documents persisted in the blockdown
// dialect: it normalizes them to canonical form, dumps their block
// structure as JSON, or renders a preview.
package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/billybjork/blockdown"
	"github.com/billybjork/blockdown/core"
	"github.com/billybjork/blockdown/render/htmlpreview"
)

var (
	flagBase  string
	flagStyle string
	flagWrite bool
)

var rootCmd = &cobra.Command{
	Use:   "blockdown",
	Short: "Parse, normalize and render blockdown documents",
	Long: `blockdown works with documents persisted in the blockdown dialect.

Examples:
  blockdown fmt post.md            # print the canonical form
  blockdown fmt -w post.md        # normalize the file in place
  blockdown inspect post.md       # dump the block tree as JSON
  blockdown render post.md        # render preview HTML to stdout`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Normalize a document to canonical form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		out := newEngine().Format(text) + "\n"
		if flagWrite {
			if err := os.WriteFile(args[0], []byte(out), 0644); err != nil {
				return core.WrapError(err, core.EIO, "cannot write %s", args[0])
			}
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Dump a document's block tree as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		out, err := newEngine().RenderJSON(text)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a document as preview HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readDocument(args[0])
		if err != nil {
			return err
		}
		e := newEngine()
		fmt.Print(htmlpreview.Render(e.Parse(text), htmlpreview.Options{
			Base:      linkBase(),
			CodeStyle: flagStyle,
		}))
		return nil
	},
}

func newEngine() *blockdown.Engine {
	if base := linkBase(); base != nil {
		return blockdown.New(blockdown.WithLinkBase(base))
	}
	return blockdown.New()
}

func linkBase() *url.URL {
	if flagBase == "" {
		return nil
	}
	base, err := url.Parse(flagBase)
	if err != nil {
		core.UserError(core.WrapError(err, core.EFORMAT, "invalid --base URL %q", flagBase))
		return nil
	}
	return base
}

func readDocument(path string) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", core.ErrorWithCode(fmt.Errorf("%s is a directory", path), core.EFORMAT)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot read %s", path)
	}
	return string(data), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBase, "base", "", "base URL for resolving link targets")
	fmtCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "rewrite the file instead of printing")
	renderCmd.Flags().StringVar(&flagStyle, "style", "", "chroma style for code highlighting")
	rootCmd.AddCommand(fmtCmd, inspectCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		core.UserError(err)
		if code := core.Code(err); code != core.NOERROR {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
