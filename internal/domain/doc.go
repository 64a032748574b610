// Package domain contains the core model of the unit converter.
//
// The domain is presentation- and storage-agnostic: it does not depend on YAML parsing,
// terminal rendering, or the filesystem. Infra/adapters and UIs map into/from these types.
package domain
