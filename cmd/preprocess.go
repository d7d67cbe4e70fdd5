package cmd

import (
	"io"

	"github.com/MichalGniadek/mdbook-rolltables/internal/config"
	"github.com/MichalGniadek/mdbook-rolltables/internal/mdbook"
	"github.com/MichalGniadek/mdbook-rolltables/internal/rolltable"
	"github.com/MichalGniadek/mdbook-rolltables/internal/ui"
)

// preprocess runs one round of the mdBook preprocessor protocol: decode the
// [context, book] tuple from in, rewrite roll tables, write the book back to
// out. Only the finished book touches stdout; diagnostics go to stderr.
func preprocess(in io.Reader, out io.Writer) error {
	ctx, book, err := mdbook.ParseInput(in)
	if err != nil {
		return err
	}

	if !mdbook.Compatible(ctx.MdbookVersion) {
		ui.DefaultStyles().Warnf(
			"the %s plugin was built against version %s of mdbook, but we're being called from version %s",
			rolltable.Name, mdbook.Version, ctx.MdbookVersion)
	}

	cfg, err := config.Load(ctx.PreprocessorConfig(rolltable.Name))
	if err != nil {
		return err
	}
	if err := rolltable.NewProcessor(cfg).ProcessBook(book); err != nil {
		return err
	}
	return book.Write(out)
}
