package main

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/setfont"
	"github.com/bodgit/setfont/console"
	"github.com/bodgit/setfont/consolefont"
	"github.com/bodgit/setfont/pnm"
	"github.com/urfave/cli/v2"
)

const defaultDB = "setfont.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func openConsole() (setfont.Device, error) {
	c, err := console.Open()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func withDB(c *cli.Context, fn func(*setfont.FontDB) error) error {
	db, err := setfont.NewFontDB(c.String("db"), newLogger(c))
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer db.Close()

	if err := fn(db); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func findFont(db *setfont.FontDB, name string) (*consolefont.Font, error) {
	f, err := db.FindFont(name)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("no font named \"%s\"", name)
	}
	return f, nil
}

func exportFont(f *consolefont.Font, file string) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := pnm.Encode(w, consolefont.Unpack(f)); err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

func newApp(open setfont.OpenFunc, db string) *cli.App {
	app := cli.NewApp()

	app.Name = "setfont"
	app.Usage = "Load a glyph sheet as the Linux console font"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SETFONT_DB"},
			Value:   db,
			Usage:   "path to font library",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			return cli.Exit(fmt.Sprintf("Use: %s path-to-glyph-sheet.pnm", c.App.Name), 1)
		}

		s := setfont.New(open, newLogger(c))
		f, err := s.Load(c.Args().First())
		if err != nil {
			return cli.Exit(fmt.Sprintf("Could not load glyph sheet: %v", err), 1)
		}

		if err := s.Install(f); err != nil {
			return cli.Exit(fmt.Sprintf("Could not install font: %v", err), 1)
		}

		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "dump",
			Usage:     "Print the packed pixels of a glyph sheet without installing it",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				s := setfont.New(open, newLogger(c))
				f, err := s.Load(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				if err := f.Dump(os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "add",
			Usage:     "Pack a glyph sheet and store it in the font library",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				return withDB(c, func(db *setfont.FontDB) error {
					return db.AddFont(c.Args().Get(0), c.Args().Get(1))
				})
			},
		},
		{
			Name:      "use",
			Usage:     "Install a font from the font library",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				return withDB(c, func(db *setfont.FontDB) error {
					f, err := findFont(db, c.Args().First())
					if err != nil {
						return err
					}

					return setfont.New(open, newLogger(c)).Install(f)
				})
			},
		},
		{
			Name:  "list",
			Usage: "List the fonts in the font library",
			Action: func(c *cli.Context) error {
				return withDB(c, func(db *setfont.FontDB) error {
					fonts, err := db.ListFonts()
					if err != nil {
						return err
					}

					for _, f := range fonts {
						fmt.Fprintf(c.App.Writer, "%s\t%dx%d\t%s\n", f.Name, f.Width, f.Height, f.SHA1)
					}

					return nil
				})
			},
		},
		{
			Name:      "remove",
			Usage:     "Remove a font from the font library",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				return withDB(c, func(db *setfont.FontDB) error {
					ok, err := db.RemoveFont(c.Args().First())
					if err != nil {
						return err
					}
					if !ok {
						return errors.New("no such font")
					}
					return nil
				})
			},
		},
		{
			Name:      "export",
			Usage:     "Write a font from the font library back out as a glyph sheet",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				return withDB(c, func(db *setfont.FontDB) error {
					f, err := findFont(db, c.Args().Get(0))
					if err != nil {
						return err
					}

					return exportFont(f, c.Args().Get(1))
				})
			},
		},
	}

	return app
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	if err := newApp(openConsole, filepath.Join(cwd, defaultDB)).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
