// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

// Package artifact persists processing artifacts: the original document
// bytes and the validated Resume record. The pipeline itself has no
// knowledge of buckets, keys, or URL expiry; stores return opaque locators.
package artifact

import (
	"context"
	"errors"

	"github.com/crewhire/resumegw/pkg/core/schema"
	"github.com/crewhire/resumegw/pkg/provider"
)

// ErrNotFound is returned when no artifact exists under the given ID.
var ErrNotFound = errors.New("artifact not found")

// Providers is the registry of artifact store backend implementations.
// Import implementation packages with blank imports to register them:
//
//	import _ "github.com/crewhire/resumegw/pkg/artifact/memory"
//	import _ "github.com/crewhire/resumegw/pkg/artifact/filesystem"
//	import _ "github.com/crewhire/resumegw/pkg/artifact/s3"
//	import _ "github.com/crewhire/resumegw/pkg/artifact/sqlite"
//	import _ "github.com/crewhire/resumegw/pkg/artifact/postgres"
var Providers = provider.NewRegistry[Store]("artifact_store")

// Locators names where the two artifacts of one document ended up.
type Locators struct {
	Document string `json:"document"`
	Resume   string `json:"resume"`
}

// Store persists the artifacts of processed documents. Implementations must
// be safe for concurrent use; multiple pipeline invocations may store
// results at once.
type Store interface {
	// SaveDocument stores the original PDF bytes under id and returns a
	// locator for the stored object.
	SaveDocument(ctx context.Context, id string, doc []byte) (string, error)

	// SaveResume stores the validated record as JSON under id and returns a
	// locator for the stored object.
	SaveResume(ctx context.Context, id string, resume *schema.Resume) (string, error)

	// GetResume loads a previously stored record.
	GetResume(ctx context.Context, id string) (*schema.Resume, error)

	Close(ctx context.Context) error
}
