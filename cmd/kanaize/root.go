package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/npillmayer/kanaize"
	"github.com/npillmayer/kanaize/internal/config"
	"github.com/npillmayer/kanaize/internal/filter"
	"github.com/npillmayer/kanaize/kana"
	"github.com/npillmayer/kanaize/kanadict"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
)

// errLinesFailed is returned if at least one input line could not be translated.
var errLinesFailed = errors.New("some lines could not be translated")

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "kanaize [text...]",
		Short: "Convert romaji to hiragana or katakana",
		Long: "Converts romaji to kana. Arguments are translated as one line each;\n" +
			"without arguments lines are read from standard input.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			setupLogger(loaded.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := newTranslator(activeCfg)
			if err != nil {
				return err
			}
			var in io.Reader = cmd.InOrStdin()
			if len(args) > 0 {
				in = bytes.NewBufferString(joinLines(args))
			}
			return translateLines(tr, activeCfg.Input.Pimsleur, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newAuditCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := config.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// loadBuilder returns a builder for the dictionary file named in cfg or, if
// there is none, for the bundled dictionary of the configured mode.
func loadBuilder(cfg config.Config) (*kanaize.KanaBuilder, error) {
	if cfg.Dictionary.Path != "" {
		f, err := os.Open(cfg.Dictionary.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		kb, header, err := kanadict.LoadBuilder(f)
		if err != nil {
			return nil, err
		}
		slog.Debug("dictionary loaded", "path", cfg.Dictionary.Path, "name", header.Name, "entries", kb.Len())
		return kb, nil
	}
	mode, err := kana.ParseMode(cfg.Dictionary.Mode)
	if err != nil {
		return nil, err
	}
	return kana.Builder(mode)
}

func newTranslator(cfg config.Config) (*kanaize.Translator, error) {
	tc, err := cfg.TranslatorConfig()
	if err != nil {
		return nil, err
	}
	var trie *kanaize.Trie
	if cfg.Dictionary.Path != "" {
		kb, err := loadBuilder(cfg)
		if err != nil {
			return nil, err
		}
		if trie, err = kb.Build(); err != nil {
			return nil, err
		}
	} else {
		mode, err := kana.ParseMode(cfg.Dictionary.Mode)
		if err != nil {
			return nil, err
		}
		if trie, err = kana.Trie(mode); err != nil {
			return nil, err
		}
	}
	return kanaize.NewTranslator(trie, tc), nil
}

// translateLines translates in line by line. A line which fails is reported
// to errOut and translation continues with the next line.
func translateLines(tr *kanaize.Translator, pimsleur bool, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineno, failed := 0, 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if pimsleur {
			line = filter.Pimsleur(line)
		}
		converted, err := tr.Translate(line)
		if err != nil {
			failed++
			slog.Debug("translation failed", "line", lineno, "error", err)
			_, _ = fmt.Fprintf(errOut, "line %d: %v\n", lineno, err)
			continue
		}
		if _, err := fmt.Fprintln(out, converted); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errLinesFailed, failed, lineno)
	}
	return nil
}

func joinLines(args []string) string {
	var b bytes.Buffer
	for _, a := range args {
		b.WriteString(a)
		b.WriteByte('\n')
	}
	return b.String()
}
