// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/memecanon/command/memecanon-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	chain   string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "memecanon-cli"
	app.Usage = "register and query canonical meme records"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " connect to memecanon `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise memecanon-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*memecanond host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex seed or private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing hex seed or private `KEY`",
				},
				cli.BoolFlag{
					Name:  "default, D",
					Usage: " make the new identity the default",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "derive",
			Usage:     "compute the record address of a meme fingerprint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: "*meme fingerprint `HEX`",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "register",
			Usage:     "register a meme as canonical",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "meme, m",
					Value: "",
					Usage: "*meme fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "image",
					Value: "",
					Usage: "*image fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "text, t",
					Value: "",
					Usage: "*text fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "verdict, V",
					Value: "",
					Usage: "*authenticity verdict `STRING`",
				},
				cli.UintFlag{
					Name:  "score, s",
					Value: 0,
					Usage: " canon score `NUMBER`",
				},
				cli.StringFlag{
					Name:  "external-ref, r",
					Value: "",
					Usage: " external reference `STRING`",
				},
				cli.StringFlag{
					Name:  "metadata-uri, u",
					Value: "",
					Usage: " metadata `URI`",
				},
			},
			Action: runRegister,
		},
		{
			Name:      "get",
			Usage:     "display a registered meme record",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fingerprint, f",
					Value: "",
					Usage: "+meme fingerprint `HEX`",
				},
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+record `ADDRESS`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "balance",
			Usage:     "display lamports held by an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "fund an identity (test networks only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 10000000,
					Usage: " amount to fund `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:   "info",
			Usage:  "display memecanond status",
			Action: runInfo,
		},
		{
			Name:      "ping",
			Usage:     "measure the round trip time to memecanond",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 3,
					Usage: " number of requests `COUNT`",
				},
			},
			Action: runPing,
		},
		{
			Name:  "version",
			Usage: "display memecanon-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate", "derive":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				chain:   network,
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			chain:   network,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}
