// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// sundown renders Markdown files (or stdin) to HTML on stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"zombiezen.com/go/sundown"
)

type options struct {
	noIntraEmphasis bool
	tables          bool
	fencedCode      bool
	autolink        bool
	strikethrough   bool
	spaceHeaders    bool
	superscript     bool
	laxSpacing      bool

	toc         bool
	tocOnly     bool
	xhtml       bool
	safelink    bool
	hardWrap    bool
	skipHTML    bool
	smartypants bool

	maxNesting int
}

func (o *options) extensions() sundown.Extensions {
	var ext sundown.Extensions
	for _, f := range []struct {
		on  bool
		bit sundown.Extensions
	}{
		{o.noIntraEmphasis, sundown.NoIntraEmphasis},
		{o.tables, sundown.Tables},
		{o.fencedCode, sundown.FencedCode},
		{o.autolink, sundown.Autolink},
		{o.strikethrough, sundown.Strikethrough},
		{o.spaceHeaders, sundown.SpaceHeaders},
		{o.superscript, sundown.Superscript},
		{o.laxSpacing, sundown.LaxSpacing},
	} {
		if f.on {
			ext |= f.bit
		}
	}
	return ext
}

func (o *options) htmlFlags() sundown.HTMLFlags {
	var flags sundown.HTMLFlags
	if o.toc {
		flags |= sundown.TOC
	}
	if o.xhtml {
		flags |= sundown.UseXHTML
	}
	if o.safelink {
		flags |= sundown.Safelink
	}
	if o.hardWrap {
		flags |= sundown.HardWrap
	}
	if o.skipHTML {
		flags |= sundown.SkipHTML
	}
	return flags
}

func newRootCommand() *cobra.Command {
	opts := &options{
		tables:        true,
		fencedCode:    true,
		autolink:      true,
		strikethrough: true,
		laxSpacing:    true,
		maxNesting:    16,
	}
	c := &cobra.Command{
		Use:           "sundown [flags] [FILE [...]]",
		Short:         "Render Markdown to HTML",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), args, opts)
		},
	}
	c.Flags().BoolVar(&opts.noIntraEmphasis, "no-intra-emphasis", false, "ignore emphasis markers inside words")
	c.Flags().BoolVar(&opts.tables, "tables", opts.tables, "recognize tables")
	c.Flags().BoolVar(&opts.fencedCode, "fenced-code", opts.fencedCode, "recognize fenced code blocks")
	c.Flags().BoolVar(&opts.autolink, "autolink", opts.autolink, "recognize bare links and e-mail addresses")
	c.Flags().BoolVar(&opts.strikethrough, "strikethrough", opts.strikethrough, "recognize ~~strikethrough~~")
	c.Flags().BoolVar(&opts.spaceHeaders, "space-headers", false, "require a space after an ATX header's # run")
	c.Flags().BoolVar(&opts.superscript, "superscript", false, "recognize ^superscript")
	c.Flags().BoolVar(&opts.laxSpacing, "lax-spacing", opts.laxSpacing, "let blocks interrupt paragraphs without a blank line")
	c.Flags().BoolVar(&opts.toc, "toc", false, "number headers with table-of-contents anchors")
	c.Flags().BoolVar(&opts.tocOnly, "toc-only", false, "emit only the table of contents")
	c.Flags().BoolVar(&opts.xhtml, "xhtml", false, "emit XHTML-style self-closing tags")
	c.Flags().BoolVar(&opts.safelink, "safelink", false, "only render links with known safe schemes")
	c.Flags().BoolVar(&opts.hardWrap, "hard-wrap", false, "render every newline in a paragraph as a break")
	c.Flags().BoolVar(&opts.skipHTML, "skip-html", false, "drop raw HTML from the output")
	c.Flags().BoolVar(&opts.smartypants, "smartypants", false, "apply typographic substitutions")
	c.Flags().IntVar(&opts.maxNesting, "max-nesting", opts.maxNesting, "maximum block and span nesting depth")
	return c
}

// readInput slurps r, decoding UTF-16 input into UTF-8 when it carries
// a byte order mark. A leading UTF-8 BOM is removed here as well.
func readInput(r io.Reader) ([]byte, error) {
	return io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
}

func run(w io.Writer, args []string, opts *options) error {
	var document []byte
	if len(args) == 0 {
		d, err := readInput(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		document = d
	} else {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			d, err := readInput(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}
			document = append(document, d...)
		}
	}

	renderer := sundown.NewHTMLRenderer(opts.htmlFlags())
	if opts.tocOnly {
		renderer = sundown.NewTOCRenderer()
	}
	p := sundown.New(opts.extensions(), opts.maxNesting, renderer.Callbacks())

	out := sundown.NewBuffer(64)
	p.Render(out, document)

	result := out
	if opts.smartypants {
		result = sundown.NewBuffer(64)
		sundown.SmartyPants(result, out.Bytes())
	}

	if _, err := w.Write(result.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sundown:", err)
		os.Exit(1)
	}
}
