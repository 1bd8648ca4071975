package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hanwen/go-fuse/v2/fs"
	log "github.com/sirupsen/logrus"

	iipart "github.com/ksherlock/ii-part"
	"github.com/ksherlock/ii-part/focus"
	"github.com/ksherlock/ii-part/microdrive"
	"github.com/ksherlock/ii-part/partfs"
	"github.com/ksherlock/ii-part/store"
)

func main() {
	readWrite := flag.Bool("rw", false, "mount the image read-write")
	verbose := flag.Bool("v", false, "log the detected partition table before mounting")
	strict := flag.Bool("strict", false, "refuse duplicate names and zero-length partitions")
	debug := flag.Bool("debug", false, "print FUSE debug information")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Printf("Usage:\n  ii-part [options] <image file or device> [mount point]\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	imagePath := flag.Arg(0)

	st, err := store.Open(imagePath, *readWrite)
	if err != nil {
		log.WithError(err).Fatalf("unable to open %s", imagePath)
	}
	defer st.Close()

	header, err := st.ReadHeader()
	if err != nil {
		log.WithError(err).Fatalf("unable to read %s", imagePath)
	}

	var table iipart.Table
	format := iipart.Detect(header)
	switch format {
	case iipart.Focus, iipart.Zip:
		table, err = focus.Parse(header)
	case iipart.MicroDrive:
		table, err = microdrive.Parse(header)
	default:
		err = iipart.ErrUnknownFormat
	}
	if err != nil {
		log.WithError(err).Fatalf("unable to parse %s", imagePath)
	}

	if *strict {
		if err := table.Validate(); err != nil {
			log.WithError(err).Fatal("partition table failed validation")
		}
	}

	log.Debugf("found %s partition table, %d partitions", format, len(table))
	for i, p := range table {
		log.Debugf("%2d: %-20s %8d %8d", i+1, p.Name, p.Start/iipart.BlockSize, p.Length/iipart.BlockSize)
	}

	mountPoint := flag.Arg(1)
	if mountPoint == "" {
		mountPoint, err = defaultMountPoint()
		if err != nil {
			log.WithError(err).Fatal("no mount point")
		}
	}

	opts := &fs.Options{}
	opts.Debug = *debug
	opts.FsName = imagePath
	opts.Name = "ii-part"
	if !*readWrite {
		opts.Options = append(opts.Options, "ro")
	}

	log.Debugf("mounting %s on %s", imagePath, mountPoint)

	server, err := fs.Mount(mountPoint, partfs.NewRoot(table, st), opts)
	if err != nil {
		log.WithError(err).Fatalf("unable to mount on %s", mountPoint)
	}

	server.Wait()
}
