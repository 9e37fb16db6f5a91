package filestore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Backup copies the web root into timestamped folders under Dir once a day
// and prunes folders older than Retention.
type Backup struct {
	Source    string
	Dir       string
	Retention time.Duration
	Hour      int
	Minute    int
	Logger    *zap.Logger
}

// NextRun is the first scheduled time strictly after now.
func (b *Backup) NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), b.Hour, b.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is done, backing up at every scheduled time.
func (b *Backup) Run(ctx context.Context) error {
	for {
		next := b.NextRun(time.Now())
		b.Logger.Info("next image backup scheduled", zap.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if dest, err := b.RunOnce(); err != nil {
			b.Logger.Error("image backup failed", zap.Error(err))
		} else {
			b.Logger.Info("images backed up", zap.String("dest", dest))
		}
	}
}

// RunOnce takes one backup immediately and prunes old ones.
func (b *Backup) RunOnce() (string, error) {
	dest := filepath.Join(b.Dir, time.Now().Format("2006-01-02_15-04-05"))
	if err := copyDir(b.Source, dest); err != nil {
		return "", err
	}
	b.prune()
	return dest, nil
}

// copyDir recursively copies a folder.
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// prune removes backup folders older than the retention window.
func (b *Backup) prune() {
	entries, err := os.ReadDir(b.Dir)
	if err != nil {
		b.Logger.Warn("read backup directory", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-b.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folder := filepath.Join(b.Dir, entry.Name())
		info, err := os.Stat(folder)
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.RemoveAll(folder); err != nil {
			b.Logger.Warn("remove old backup", zap.String("folder", folder), zap.Error(err))
		} else {
			b.Logger.Info("removed old backup", zap.String("folder", folder))
		}
	}
}
