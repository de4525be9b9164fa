package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/helm-server/api"
	"github.com/a-bouts/helm-server/course"
	"github.com/a-bouts/helm-server/helm"
	"github.com/a-bouts/helm-server/land"
	"github.com/a-bouts/helm-server/latlon"
	"github.com/a-bouts/helm-server/wind"
	"github.com/a-bouts/helm-server/xmpp"
)

func main() {

	fs := flag.NewFlagSet("helm-server", flag.ExitOnError)
	var (
		addr         = fs.String("addr", ":8877", "listen address")
		debug        = fs.Bool("debug", false, "debug logs")
		cpuprofile   = fs.Bool("cpuprofile", false, "profile tick requests")
		team         = fs.String("team", "a-bouts", "team name")
		startLat     = fs.Float64("start-lat", 46.494573, "start latitude")
		startLon     = fs.Float64("start-lon", -1.795709, "start longitude")
		courseFile   = fs.String("course-file", "", "JSON course file, empty for the built in course")
		gribData     = fs.String("grib-data", "grib-data", "grib files directory")
		landFile     = fs.String("land-file", "land/output", "land bitmap file")
		xmppHost     = fs.String("xmpp-host", "", "")
		xmppJid      = fs.String("xmpp-jid", "", "")
		xmppPassword = fs.String("xmpp-password", "", "")
		xmppTo       = fs.String("xmpp-to", "", "")
	)
	ff.Parse(fs, os.Args[1:], ff.WithEnvVarNoPrefix())

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	x := &xmpp.Xmpp{Config: xmpp.Config{Host: *xmppHost, Jid: *xmppJid, Password: *xmppPassword, To: *xmppTo}}

	log.Info("Load lands")
	l, err := land.InitLand(*landFile)
	if err != nil {
		log.WithError(err).Fatal("Error loading land file")
	}

	log.Info("Load winds")
	w, err := wind.InitWinds(*gribData)
	if err != nil {
		log.WithError(err).Fatal("Error loading winds")
	}

	cfg := course.Config{Start: latlon.LatLon{Lat: *startLat, Lon: *startLon}}

	var c *course.Course
	if *courseFile != "" {
		c, err = course.Load(*courseFile, cfg)
		if err != nil {
			log.WithError(err).Fatalf("Error loading course '%s'", *courseFile)
		}
	} else {
		c = course.New(cfg)
	}
	log.Infof("Course '%s' : %d checkpoints", c.Name, len(c.Checkpoints))

	h := helm.New(*team, c, x)

	log.Info("Start server")

	router := api.InitServer(*cpuprofile, h, w, l)
	log.Fatal(http.ListenAndServe(*addr, handlers.CombinedLoggingHandler(os.Stdout, router)))
}
