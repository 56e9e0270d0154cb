// Package main demonstrates declaring a small storage error hierarchy,
// dispatching on it, and logging instances through zap.
package main

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	xgxsubtype "github.com/xgx-io/xgx-subtype"
	"github.com/xgx-io/xgx-subtype/xgxzap"
)

var (
	StorageError = xgxsubtype.Root.Subtype("StorageError")
	KeyNotFound  = StorageError.Subtype("KeyNotFound",
		xgxsubtype.Template("key {{key}} not found in bucket {{bucket}}"))
	BucketReadOnly = StorageError.Subtype("BucketReadOnly",
		xgxsubtype.Template("bucket {{bucket}} is read-only"))
)

type lookup struct {
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
}

func get(bucket, key string) error {
	if bucket == "archive" {
		return BucketReadOnly.New(map[string]any{"bucket": bucket}, fs.ErrPermission)
	}
	return KeyNotFound.New(lookup{Bucket: bucket, Key: key})
}

func status(err error) int {
	code, serr := xgxsubtype.Switch(err, xgxsubtype.Cases[int]{
		"KeyNotFound":  func(any) int { return 404 },
		"StorageError": func(any) int { return 503 },
	}, func(any) int { return 500 })
	if serr != nil {
		return 500
	}
	return code
}

func main() {
	logger := zap.NewExample()
	defer func() { _ = logger.Sync() }()
	xgxzap.SetLogger(logger)

	levels := xgxzap.Levels{
		"KeyNotFound":  zapcore.InfoLevel,
		"StorageError": zapcore.WarnLevel,
	}

	for _, b := range []string{"users", "archive"} {
		err := get(b, "42")
		fmt.Printf("%v -> %d\n", err, status(err))
		xgxzap.Log(nil, "storage call failed", err, levels)

		if errors.Is(err, fs.ErrPermission) {
			fmt.Printf("%+v\n", err)
		}
	}

	// Library failures are instances too.
	if _, err := StorageError.Build(nil, nil); err != nil {
		fmt.Println(xgxsubtype.CodeOf(err), "-", err)
	}
}
