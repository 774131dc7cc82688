package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-numerology/internal/app"
	"github.com/tartampluch/go-numerology/internal/compat"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/tartampluch/go-numerology/internal/curiosity"
	"github.com/tartampluch/go-numerology/internal/engine"
	"github.com/tartampluch/go-numerology/internal/export"
	"github.com/tartampluch/go-numerology/internal/numerology"
	"github.com/tartampluch/go-numerology/internal/render"
	"github.com/tartampluch/go-numerology/internal/server"
	"golang.org/x/sync/errgroup"
)

func (c *cli) mapCmd() *cobra.Command {
	var withCalendar bool
	cmd := &cobra.Command{
		Use:   config.CmdMap,
		Short: config.CmdDescMap,
		Args:  cobra.NoArgs,
	}
	p := bindPerson(cmd, config.FlagFirst, config.FlagLast, config.FlagBirth, "")
	o := bindOutput(cmd, true)
	cmd.Flags().BoolVar(&withCalendar, config.FlagCalendar, false, config.FlagDescCalendar)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		e, err := c.entry(p, o)
		if err != nil {
			return err
		}
		return c.emit(o, func(r *render.Renderer) string {
			if withCalendar {
				return r.Profile(e.Profile) + r.Calendar(e.Calendar, c.clock.Now())
			}
			return r.Profile(e.Profile)
		}, func() any {
			if withCalendar {
				return e.Document()
			}
			return export.FromProfile(e.Profile)
		})
	}
	return cmd
}

func (c *cli) timelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdTimeline,
		Short: config.CmdDescTimeline,
		Args:  cobra.NoArgs,
	}
	p := bindPerson(cmd, config.FlagFirst, config.FlagLast, config.FlagBirth, "")
	o := bindOutput(cmd, false)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		e, err := c.entry(p, o)
		if err != nil {
			return err
		}
		birth := e.Profile.Person.Birth
		age := numerology.LastBirthdayYear(birth, c.clock.Now()) - birth.Year
		rows := e.Profile.Timeline()
		return c.emit(o,
			func(r *render.Renderer) string { return r.Timeline(rows, age) },
			func() any { return rows },
		)
	}
	return cmd
}

func (c *cli) calendarCmd() *cobra.Command {
	var icsPath string
	cmd := &cobra.Command{
		Use:   config.CmdCalendar,
		Short: config.CmdDescCalendar,
		Args:  cobra.NoArgs,
	}
	p := bindPerson(cmd, config.FlagFirst, config.FlagLast, config.FlagBirth, "")
	o := bindOutput(cmd, true)
	cmd.Flags().StringVar(&icsPath, config.FlagICS, "", config.FlagDescICS)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		e, err := c.entry(p, o)
		if err != nil {
			return err
		}
		if icsPath != "" {
			if err := c.writeICS(icsPath, []engine.ProfileEntry{e}); err != nil {
				return err
			}
		}
		return c.emit(o,
			func(r *render.Renderer) string { return r.Calendar(e.Calendar, c.clock.Now()) },
			func() any { return export.New().Set(config.KeyFullName, e.Name).WithCalendar(e.Calendar) },
		)
	}
	return cmd
}

// writeICS encodes the calendars of entries with the configured reminder.
func (c *cli) writeICS(path string, entries []engine.ProfileEntry) error {
	trigger, err := c.settings.Reminder.Trigger()
	if err != nil {
		return err
	}
	data, _, err := app.NewGenerator(c.clock, nil, c.catalog).EncodeICS(entries, trigger)
	if err != nil {
		return err
	}
	return c.write(path, data)
}

func (c *cli) compatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdCompat,
		Short: config.CmdDescCompat,
		Args:  cobra.NoArgs,
	}
	p1 := bindPerson(cmd, config.FlagFirst1, config.FlagLast1, config.FlagBirth1, config.FlagDescPerson1)
	p2 := bindPerson(cmd, config.FlagFirst2, config.FlagLast2, config.FlagBirth2, config.FlagDescPerson2)
	o := bindOutput(cmd, true)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		a, err := c.entry(p1, o)
		if err != nil {
			return err
		}
		b, err := c.entry(p2, o)
		if err != nil {
			return err
		}
		rep := compat.Compare(c.catalog, a.Profile, b.Profile)
		return c.emit(o,
			func(r *render.Renderer) string { return r.Compat(rep, a.Name, b.Name) },
			func() any { return rep },
		)
	}
	return cmd
}

func (c *cli) energyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdEnergy,
		Short: config.CmdDescEnergy,
		Args:  cobra.NoArgs,
	}
	p := bindPerson(cmd, config.FlagFirst, config.FlagLast, config.FlagBirth, "")
	o := bindOutput(cmd, true)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		e, err := c.entry(p, o)
		if err != nil {
			return err
		}
		energy := curiosity.EnergySchema(e.Profile.Core)
		return c.emit(o,
			func(r *render.Renderer) string { return r.Energy(energy) },
			func() any { return export.FromProfile(e.Profile).WithEnergy(energy) },
		)
	}
	return cmd
}

func (c *cli) vibrationCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   config.CmdVibration,
		Short: config.CmdDescVibration,
		Args:  cobra.ExactArgs(1),
	}
	o := bindOutput(cmd, false)
	cmd.Flags().StringVar(&kind, config.FlagKind, config.DigitTablePet, config.FlagDescKind)

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		if !slices.Contains([]string{config.DigitTablePet, config.DigitTableArtName}, kind) {
			return fmt.Errorf("%s: %q", config.ErrVibrationKind, kind)
		}
		v := curiosity.NameVibration(args[0])
		return c.emit(o,
			func(r *render.Renderer) string { return r.Vibration(v, kind) },
			func() any { return v },
		)
	}
	return cmd
}

func (c *cli) addressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.CmdAddress,
		Short: config.CmdDescAddress,
		Args:  cobra.MinimumNArgs(1),
	}
	o := bindOutput(cmd, false)

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		a := curiosity.AnalyzeAddress(strings.Join(args, " "))
		return c.emit(o,
			func(r *render.Renderer) string { return r.Address(a) },
			func() any { return a },
		)
	}
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	var (
		src     config.SourceSettings
		icsPath string
	)
	cmd := &cobra.Command{
		Use:   config.CmdImport,
		Short: config.CmdDescImport,
		Args:  cobra.NoArgs,
	}
	o := bindOutput(cmd, true)
	f := cmd.Flags()
	f.StringVar(&src.Mode, config.FlagSource, "", config.FlagDescSource)
	f.StringVar(&src.LocalPath, config.FlagPath, "", config.FlagDescPath)
	f.StringVar(&src.URL, config.FlagURL, "", config.FlagDescURL)
	f.StringVar(&src.User, config.FlagUser, "", config.FlagDescUser)
	f.StringVar(&icsPath, config.FlagICS, "", config.FlagDescICS)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		year, err := c.referenceYear(o)
		if err != nil {
			return err
		}
		s := c.settings
		s.ReferenceYear = year
		s.Source = mergeSource(s.Source, src)

		syncCfg, err := app.SyncConfigFrom(s)
		if err != nil {
			return err
		}
		gen := app.NewGenerator(c.clock, engine.NewHTTPFetcher(), c.catalog)
		res, err := gen.RunSync(cmd.Context(), syncCfg)
		if err != nil {
			return err
		}
		if len(res.Entries) == 0 {
			return errors.New(config.ErrNoContacts)
		}

		if icsPath != "" {
			if err := c.write(icsPath, res.ICS); err != nil {
				return err
			}
		}
		return c.emit(o,
			func(r *render.Renderer) string { return r.Contacts(res.Entries) },
			func() any { return engine.Documents(res.Entries) },
		)
	}
	return cmd
}

// mergeSource overrides the configured source with non-empty flags.
func mergeSource(base, flags config.SourceSettings) config.SourceSettings {
	if flags.Mode != "" {
		base.Mode = flags.Mode
	}
	if flags.LocalPath != "" {
		base.LocalPath = flags.LocalPath
	}
	if flags.URL != "" {
		base.URL = flags.URL
	}
	if flags.User != "" {
		base.User = flags.User
	}
	return base
}

func (c *cli) loginCmd() *cobra.Command {
	var (
		user      string
		passStdin bool
	)
	cmd := &cobra.Command{
		Use:   config.CmdLogin,
		Short: config.CmdDescLogin,
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&user, config.FlagUser, "", config.FlagDescUser)
	cmd.Flags().BoolVar(&passStdin, config.FlagPassStdin, false, config.FlagDescPassStdin)

	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		if user == "" {
			user = c.settings.Source.User
		}
		if user == "" {
			return fmt.Errorf("%s: --%s", config.ErrMissingFlag, config.FlagUser)
		}

		if !passStdin {
			_, _ = fmt.Fprint(c.out, config.MsgPasswordPrompt)
		}
		pass, err := readPassword(c.in)
		if err != nil {
			return err
		}
		if err := app.StorePassword(user, pass); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(c.out, config.MsgPasswordStored)
		return nil
	}
	return cmd
}

func (c *cli) serveCmd() *cobra.Command {
	var (
		port     string
		interval int
	)
	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.CmdDescServe,
		Args:  cobra.NoArgs,
	}
	cmd.Flags().StringVar(&port, config.FlagPort, "", config.FlagDescPort)
	cmd.Flags().IntVar(&interval, config.FlagInterval, 0, config.FlagDescInterval)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s := c.settings
		if port != "" {
			s.Server.Port = port
		}
		if interval > 0 {
			s.Server.RefreshMin = interval
		}
		if err := config.ValidatePort(s.Server.Port); err != nil {
			return err
		}

		srv := server.NewFeedServer(s.Server.Port)
		svc := app.NewService(s, srv, engine.NewHTTPFetcher(), c.catalog)
		svc.Clock = c.clock

		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error { return srv.Start(ctx) })
		g.Go(func() error {
			svc.Run(ctx)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
		return nil
	}
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   config.CmdVersion,
		Short: config.CmdDescVersion,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	}
}
