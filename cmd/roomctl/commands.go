package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"room-booking/internal/booking"
	"room-booking/internal/bootstrap"
)

type loader func(ctx context.Context, configPath, logLevel string) (*bootstrap.App, error)

func newApp(out io.Writer, load loader) *cli.App {
	appFrom := func(c *cli.Context) (*bootstrap.App, error) {
		return load(c.Context, c.String("config"), c.String("log-level"))
	}

	return &cli.App{
		Name:      "roomctl",
		Usage:     "Inspect and book meeting rooms from the terminal.",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to config.yaml (default: ./config, ., /etc/app/)"},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			roomsCommand(appFrom),
			eventsCommand(appFrom),
			bookCommand(appFrom),
		},
	}
}

func roomsCommand(appFrom func(*cli.Context) (*bootstrap.App, error)) *cli.Command {
	return &cli.Command{
		Name:  "rooms",
		Usage: "List buildings and their bookable rooms.",
		Action: func(c *cli.Context) error {
			app, err := appFrom(c)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ROOM\tBUILDING\tCONFLICTS WITH")
			for _, b := range app.Booking.Rooms(c.Context).Buildings {
				for _, r := range b.Rooms {
					fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, b.ID, strings.Join(r.ConflictsWith, ", "))
				}
			}
			return w.Flush()
		},
	}
}

func eventsCommand(appFrom func(*cli.Context) (*bootstrap.App, error)) *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "List the events of one day.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Value: "today", Usage: "YYYY-MM-DD, today, tomorrow or yesterday"},
		},
		Action: func(c *cli.Context) error {
			app, err := appFrom(c)
			if err != nil {
				return err
			}

			out, err := app.Booking.EventsOn(c.Context, booking.EventsOnInput{Date: c.String("date")})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "%s (%d events)\n", out.Day.Format("Monday, January 02, 2006"), len(out.Events))
			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			for _, e := range out.Events {
				fmt.Fprintf(w, "%s-%s\t%s\t%s\t%s\n", e.StartTime.Format("15:04"), e.EndTime.Format("15:04"), e.Name, e.Location, e.ID)
			}
			return w.Flush()
		},
	}
}

func bookCommand(appFrom func(*cli.Context) (*bootstrap.App, error)) *cli.Command {
	return &cli.Command{
		Name:  "book",
		Usage: "Book a room if the slot is free.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "location", Aliases: []string{"room"}, Required: true},
			&cli.StringFlag{Name: "date", Value: "today", Usage: "YYYY-MM-DD, today or tomorrow"},
			&cli.StringFlag{Name: "start", Required: true, Usage: "HH:MM"},
			&cli.StringFlag{Name: "end", Required: true, Usage: "HH:MM"},
			&cli.StringFlag{Name: "description"},
			&cli.StringFlag{Name: "host", Usage: "primary host email"},
			&cli.StringSliceFlag{Name: "additional-host"},
		},
		Action: func(c *cli.Context) error {
			app, err := appFrom(c)
			if err != nil {
				return err
			}

			day, err := app.DateMath.ParseDate(c.String("date"), time.Now())
			if err != nil {
				return err
			}
			start, err := app.DateMath.At(day, c.String("start"))
			if err != nil {
				return err
			}
			end, err := app.DateMath.At(day, c.String("end"))
			if err != nil {
				return err
			}

			out, err := app.Booking.Book(c.Context, booking.BookInput{
				Name:            c.String("name"),
				StartTime:       start,
				EndTime:         end,
				Location:        c.String("location"),
				Description:     c.String("description"),
				HostEmail:       c.String("host"),
				AdditionalHosts: c.StringSlice("additional-host"),
			})

			var conflictErr *booking.ConflictError
			if errors.As(err, &conflictErr) {
				fmt.Fprintln(c.App.Writer, "Cannot create event due to conflicts:")
				for _, e := range conflictErr.Conflicts {
					fmt.Fprintf(c.App.Writer, "  - %s (%s-%s, %s)\n", e.Name, e.StartTime.Format("15:04"), e.EndTime.Format("15:04"), e.Location)
				}
				return cli.Exit("", 2)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "Booked %q in %s, %s-%s (id %s)\n", out.Event.Name, out.Event.Location,
				out.Event.StartTime.Format("2006-01-02 15:04"), out.Event.EndTime.Format("15:04"), out.EventID)
			for _, f := range out.HostFailures {
				fmt.Fprintf(c.App.Writer, "warning: could not add host %s: %v\n", f.Email, f.Err)
			}
			return nil
		},
	}
}
