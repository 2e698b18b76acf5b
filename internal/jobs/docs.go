// Package jobs wires background queue consumers to their command handlers.
//
// Two queues are consumed:
//
// 1. RouteCalculationJob - recomputes a delivery's route estimate after dispatch
// 2. ReceiptGenerationJob - assembles the customer receipt after completion
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(client, recalculateHandler, receiptHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// Retry behavior (attempts, backoff, concurrency) lives in the queue worker
// configuration, not here. A handler returning an error is enough to trigger
// a retry and, eventually, dead-lettering.
package jobs
