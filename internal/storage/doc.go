// Package storage persists the fuel rate summary document.
//
// The storage package overwrites a single JSON file (fuel-rate.json by
// default) with 2-space indentation. The file is fully replaced on every
// successful run; a failed run leaves the previous file untouched so the
// website keeps showing the last known rate.
package storage
