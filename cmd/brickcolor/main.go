package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"rbxconv/pkg/brickcolor"
	"rbxconv/pkg/cfg"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	// .env is optional
	_ = godotenv.Load()

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	levelName := cfg.LogLevel
	if env := os.Getenv(cfg.LogLevelEnv); env != "" {
		levelName = env
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		log.WithField("level", levelName).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func usage() {
	fmt.Printf("usage: %s nearest R G B\n", os.Args[0])
	fmt.Printf("       %s color ID\n", os.Args[0])
	fmt.Printf("       %s list\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	m := brickcolor.DefaultMatcher()
	log.WithFields(logrus.Fields{
		"entries": m.Palette().Len(),
		"indexed": cfg.IndexedLookup,
	}).Debug("palette loaded")

	if err := run(os.Stdout, m, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		log.WithError(err).Fatal("lookup failed")
	}
}

var errUsage = errors.New("bad arguments")

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func run(w io.Writer, m *brickcolor.Matcher, command string, args []string) error {
	switch command {
	case "nearest":
		if len(args) != 3 {
			return errUsage
		}
		var rgb [3]int
		for i, name := range []string{"red", "green", "blue"} {
			n, err := atoi(name, args[i])
			if err != nil {
				return err
			}
			rgb[i] = n
		}
		e, err := m.Nearest(rgb[0], rgb[1], rgb[2])
		if err != nil {
			return err
		}
		target := brickcolor.RGB{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
		log.WithFields(logrus.Fields{
			"target":   target,
			"id":       e.ID,
			"distance": brickcolor.Distance(target, e.Color),
		}).Debug("matched")
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, e.Color)

	case "color":
		if len(args) != 1 {
			return errUsage
		}
		id, err := atoi("id", args[0])
		if err != nil {
			return err
		}
		c, err := m.ColorOf(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%d\n", c.R, c.G, c.B)

	case "list":
		if len(args) != 0 {
			return errUsage
		}
		for _, e := range m.Palette().Entries() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.Name, e.Color)
		}

	default:
		return errUsage
	}
	return nil
}
