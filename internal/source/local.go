package source

import (
	"context"
	"fmt"
)

// LocalResolver reads templates from the local filesystem.
type LocalResolver struct {
	FS FS
}

func (l *LocalResolver) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fsys := l.FS
	if fsys == nil {
		fsys = OSFS{}
	}

	info, err := fsys.Stat(location)
	if err != nil {
		return "", &SourceError{Location: location, Operation: "fetch", Err: fmt.Errorf("stat: %w", err), Hint: "check that the path exists"}
	}
	if info.IsDir() {
		return "", &SourceError{Location: location, Operation: "fetch", Err: fmt.Errorf("is a directory"), Hint: "point 'source' at an HTML file"}
	}

	data, err := fsys.ReadFile(location)
	if err != nil {
		return "", &SourceError{Location: location, Operation: "fetch", Err: fmt.Errorf("reading: %w", err)}
	}
	return string(data), nil
}
