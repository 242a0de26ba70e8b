// Package hero provides the content models behind the hero shelves of the
// marketing surface: a primary shelf promoting a recommended add-on, a
// secondary shelf with headline, description and call to action, and the
// modules shown under a secondary shelf.
//
// It exposes a single Service interface that validates records before they
// are persisted through a pluggable Repository (memory and Postgres
// implementations live in subpackages). Image and icon fields are choice
// fields whose allowed values come from a ChoiceSource, typically a directory
// of image files on disk or a prefix in an S3 bucket.
//
// Validation
//
// Field validation (required values, lengths, choices) runs first. Record
// validation runs only when every field is valid and enforces the shelf
// invariants: at least one shelf of each kind stays enabled, a call to action
// has both URL and text or neither, and an enabled primary shelf points at a
// recommended add-on (or, when external, at an add-on with a homepage).
package hero
