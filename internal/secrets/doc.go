// Package secrets generates random secret values and writes them into a
// project's env file.
//
// # Tokens
//
// GenerateToken draws bytes from crypto/rand and hex-encodes them, so a
// token of length n is always exactly n characters of [0-9a-f].
//
// # Materialization
//
// A Materializer turns a template's sample env file into a working one:
//
//  1. <dir>/.env.sample is copied over <dir>/.env
//  2. the copy is parsed with the envfile package
//  3. every field in the Materializer's SecretFields gets its own fresh token,
//     and fields missing from the sample are appended
//  4. the result is written back to <dir>/.env
//
// Comments and blank lines from the sample are not carried into .env. The
// sample itself is never modified. Running Materialize again produces a
// valid file with different secrets.
package secrets
