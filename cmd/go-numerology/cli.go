package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/engine"
	"github.com/tartampluch/go-numerology/internal/export"
	"github.com/tartampluch/go-numerology/internal/interpret"
	"github.com/tartampluch/go-numerology/internal/numerology"
	"github.com/tartampluch/go-numerology/internal/render"
	"golang.org/x/term"
)

// cli carries the state shared by every command: streams, the clock and
// what PersistentPreRunE resolved from flags and settings.
type cli struct {
	in          io.Reader
	out, errOut io.Writer
	clock       engine.Clock
	logFile     bool

	configPath string
	debug      bool
	lang       string

	settings  config.Settings
	catalog   *interpret.Catalog
	logCloser io.Closer
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           config.BinaryName,
		Short:         config.CmdDescRoot,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, config.FlagConfig, "", config.FlagDescConfig)
	pf.BoolVar(&c.debug, config.FlagDebug, false, config.FlagDescDebug)
	pf.StringVar(&c.lang, config.FlagLang, "", config.FlagDescLang)

	root.AddCommand(
		c.mapCmd(),
		c.timelineCmd(),
		c.calendarCmd(),
		c.compatCmd(),
		c.energyCmd(),
		c.vibrationCmd(),
		c.addressCmd(),
		c.importCmd(),
		c.loginCmd(),
		c.serveCmd(),
		c.versionCmd(),
	)
	return root
}

// setup starts logging, then loads settings and the catalog. Flags win over
// the settings file.
func (c *cli) setup(cmd *cobra.Command) error {
	c.logCloser = setupLogging(c.debug, c.errOut, c.logFile)
	logStartupInfo(cmd.Name())

	path := c.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	if c.lang != "" {
		s.Language = c.lang
	}

	cat, err := interpret.NewCatalog(s.Language)
	if err != nil {
		return err
	}
	c.settings, c.catalog = s, cat
	return nil
}

func (c *cli) close() {
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}

// personFlags binds the three identity flags of one person.
type personFlags struct {
	first, last, birth             string
	firstFlag, lastFlag, birthFlag string
}

func bindPerson(cmd *cobra.Command, first, last, birth, descPrefix string) *personFlags {
	p := &personFlags{firstFlag: first, lastFlag: last, birthFlag: birth}
	f := cmd.Flags()
	f.StringVar(&p.first, first, "", descPrefix+config.FlagDescFirst)
	f.StringVar(&p.last, last, "", descPrefix+config.FlagDescLast)
	f.StringVar(&p.birth, birth, "", descPrefix+config.FlagDescBirth)
	return p
}

// person validates the flags the same way the address-book import
// validates contacts.
func (c *cli) person(p *personFlags) (numerology.Person, error) {
	for _, f := range []struct{ name, value string }{
		{p.firstFlag, p.first},
		{p.lastFlag, p.last},
		{p.birthFlag, p.birth},
	} {
		if strings.TrimSpace(f.value) == "" {
			return numerology.Person{}, fmt.Errorf("%s: --%s", config.ErrMissingFlag, f.name)
		}
	}

	birth, err := numerology.ParseBirthDate(p.birth)
	if err != nil {
		return numerology.Person{}, fmt.Errorf("--%s: %w", p.birthFlag, err)
	}
	person := numerology.Person{
		FirstName: strings.TrimSpace(p.first),
		LastName:  strings.TrimSpace(p.last),
		Birth:     birth,
	}
	if err := person.Validate(c.clock.Now(), c.settings.MinBirthYear); err != nil {
		return numerology.Person{}, err
	}
	return person, nil
}

// outputFlags selects the reference year and where and how a report is
// written.
type outputFlags struct {
	year   int
	format string
	out    string
}

func bindOutput(cmd *cobra.Command, withYear bool) *outputFlags {
	o := &outputFlags{}
	f := cmd.Flags()
	if withYear {
		f.IntVar(&o.year, config.FlagYear, 0, config.FlagDescYear)
	}
	f.StringVar(&o.format, config.FlagFormat, "", config.FlagDescFormat)
	f.StringVar(&o.out, config.FlagOut, "", config.FlagDescOut)
	return o
}

// referenceYear returns the --year flag, then the settings override. Zero
// lets the engine follow the clock.
func (c *cli) referenceYear(o *outputFlags) (int, error) {
	switch {
	case o.year < 0 || o.year > config.MaxReferenceYear:
		return 0, fmt.Errorf("%s: %d", config.ErrInvalidYear, o.year)
	case o.year > 0:
		return o.year, nil
	default:
		return c.settings.ReferenceYear, nil
	}
}

func (c *cli) entry(p *personFlags, o *outputFlags) (engine.ProfileEntry, error) {
	person, err := c.person(p)
	if err != nil {
		return engine.ProfileEntry{}, err
	}
	year, err := c.referenceYear(o)
	if err != nil {
		return engine.ProfileEntry{}, err
	}
	return engine.NewEntry(person, c.clock.Now(), year), nil
}

// emit writes either the terminal table or the encoded document.
func (c *cli) emit(o *outputFlags, table func(r *render.Renderer) string, data func() any) error {
	format := o.format
	if format == "" {
		format = c.settings.Format
	}
	format, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if format == config.FormatTable {
		buf.WriteString(table(render.New(c.catalog)))
	} else if err := export.Encode(&buf, data(), format); err != nil {
		return err
	}
	return c.write(o.out, buf.Bytes())
}

// write sends data to stdout, or to path when one is given.
func (c *cli) write(path string, data []byte) error {
	if path == "" {
		_, err := c.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOutputFile, err)
	}
	slog.Info(config.MsgExported,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(data),
	)
	return nil
}

// readPassword reads without echo from a terminal, otherwise one line.
func readPassword(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", fmt.Errorf("%s: %w", config.ErrPasswordRead, err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%s: %w", config.ErrPasswordRead, err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New(config.ErrPasswordRead)
	}
	return line, nil
}
