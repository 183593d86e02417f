// Package uuidgen generates RFC 4122 version 4 UUIDs.
//
// Identifiers are assembled by identifier.Builder over a pluggable
// random.Source (crypto/rand backed or a clock-seeded PRNG), or produced by
// identifier.External which delegates to github.com/google/uuid. The Service
// façade in this package selects a backend from Config and traces every call
// with OpenTelemetry:
//
//	cfg, _ := uuidgen.LoadConfig(ctx, "uuidgen.yaml")
//	srv, _ := uuidgen.NewFromConfig(cfg)
//	id, _ := srv.Generate(ctx)
//	fmt.Println(id)
//
// For more details see the individual sub-packages.
package uuidgen
