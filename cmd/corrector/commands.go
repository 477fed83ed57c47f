package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cours-de-latin/corrector"
	"github.com/cours-de-latin/corrector/badgerstore"
	"github.com/cours-de-latin/corrector/internal/config"
	"github.com/cours-de-latin/corrector/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	envPath    string
	dictDir    string
	store      string
}

func (o *options) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(o.envPath); err != nil {
		return nil, err
	}
	conf, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dictDir != "" {
		conf.Lexicon.DictDir = o.dictDir
	}
	if o.store != "" {
		conf.Lexicon.Store = o.store
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := logging.Setup(conf.Logging.Path, conf.Logging.Level); err != nil {
		return nil, err
	}
	return conf, nil
}

// withCorrector opens the configured store, loads the lexicon and
// hands a corrector to fn.
func (o *options) withCorrector(fn func(*corrector.Corrector) error) error {
	conf, err := o.loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := conf.Lexicon.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error().Err(err).Msg("failed to close lexicon store")
		}
	}()
	lex, err := corrector.LoadLexicon(store)
	if err != nil {
		return err
	}
	return fn(corrector.New(lex, conf.Lexicon.CorrectorOptions()...))
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:           "corrector",
		Short:         "Sinhala grammar corrector for simple subject-object-verb sentences",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCorrector(func(c *corrector.Corrector) error {
				return interact(c, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "corrector.yaml", "path to the YAML configuration")
	root.PersistentFlags().StringVar(&opts.envPath, "env", ".env", "path to an optional .env file")
	root.PersistentFlags().StringVar(&opts.dictDir, "data", "", "dictionary directory (overrides the configuration)")
	root.PersistentFlags().StringVar(&opts.store, "store", "", "lexicon store: file or badger (overrides the configuration)")

	root.AddCommand(
		newVocabCmd(opts),
		newCheckCmd(opts),
		newImportCmd(opts),
	)
	return root
}

func newVocabCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab",
		Short: "List the known subjects, objects and verbs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCorrector(func(c *corrector.Corrector) error {
				printVocabulary(cmd.OutOrStdout(), c.Vocabulary())
				return nil
			})
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <sentence>",
		Short: "Check a sentence and explain the corrections",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withCorrector(func(c *corrector.Corrector) error {
				report, err := c.Check(strings.Join(args, " "))
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			})
		},
	}
}

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Copy the JSON tables of a directory into the badger store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.store = config.StoreBadger
			conf, err := opts.loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := conf.Lexicon.OpenStore()
			if err != nil {
				return err
			}
			defer func() {
				if err := closeStore(); err != nil {
					log.Error().Err(err).Msg("failed to close lexicon store")
				}
			}()
			if err := corrector.CopyLexicon(store, corrector.FileStore{Dir: args[0]}); err != nil {
				return err
			}
			db, ok := store.(*badgerstore.Store)
			if !ok {
				return fmt.Errorf("store %q is not a badger store", conf.Lexicon.Store)
			}
			names, err := db.Names()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s into %s: %s\n", args[0], conf.Lexicon.BadgerPath, strings.Join(names, ", "))
			return nil
		},
	}
}

func printVocabulary(w io.Writer, v corrector.Vocabulary) {
	fmt.Fprintln(w, "\nAvailable Subjects:")
	fmt.Fprintln(w, strings.Join(v.Subjects, ", "))
	fmt.Fprintln(w, "\nAvailable Objects:")
	fmt.Fprintln(w, strings.Join(v.Objects, ", "))
	fmt.Fprintln(w, "\nAvailable Verbs:")
	fmt.Fprintln(w, strings.Join(v.Verbs, ", "))
}

// interact runs the one-shot prompt: vocabulary, one line of input,
// corrected output.
func interact(c *corrector.Corrector, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Sinhala Grammar Corrector")
	printVocabulary(out, c.Vocabulary())
	fmt.Fprint(out, "\nEnter a sentence to create or correct: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	corrected, err := c.CorrectParagraph(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "\nCorrected Output:")
	fmt.Fprintln(out, corrected)
	return nil
}
