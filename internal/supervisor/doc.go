// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

/*
Package supervisor runs the long-lived parts of the serve command under a
suture v4 supervisor tree.

The tree has two layers:

	fpgrowth (root)
	├── maintenance-layer   run store GC, engine cache pruning
	└── api-layer           HTTP server

Layers fail independently. A maintenance service that keeps erroring is
restarted with backoff while the API layer continues serving requests.

Supervisor events (restarts, backoff, timeouts) are logged through
logging.NewSlogLogger, which bridges sutureslog into zerolog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	tree.AddMaintenanceService(services.NewPeriodicService("run-store-gc", 10*time.Minute, runStore.RunGC))
	return tree.Serve(ctx)

The services subpackage holds the suture.Service adapters.
*/
package supervisor
