// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

/*
Package supervisor provides process supervision for Trailhead using suture v4.

Long-running components are organized into two layers so a failing
background job never takes the API down:

	RootSupervisor ("trailhead")
	├── DataSupervisor ("data-layer")
	│   ├── weather-refresher   (if weather is enabled)
	│   ├── catalog-watcher     (if CATALOG_WATCH and CATALOG_PATH are set)
	│   └── store-gc            (on-disk stores only do work)
	└── APISupervisor ("api-layer")
	    └── http-server

Crashed services are restarted with suture's backoff; supervisor events are
logged through sutureslog on top of the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(weatherSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)
*/
package supervisor
