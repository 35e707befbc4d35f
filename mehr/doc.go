// Package mehr implements the Maximal Empty Hyper-Rectangle discovery
// engine: a seed generator, three randomized expansion strategies
// (sequential, even, random), and a parallel, batched search driver with
// convergence-based termination and periodic persistence.
//
// Engine holds the read-only, shared state (the point cloud and its
// projection index, see package pointset) that every search worker reads
// without synchronization. Search runs the batched outer loop: each batch
// dispatches seed-and-expand tasks across a worker pool, blocks until they
// all complete, then single-threadedly admits results into a HallOfFame
// and persists it (see package persist) before starting the next batch.
//
//	data, _ := pointset.NewMatrix(points)
//	eng, _ := mehr.NewEngine(data, mehr.Random, false)
//	hof, err := eng.Search(context.Background(), 500, nil, true)
package mehr
