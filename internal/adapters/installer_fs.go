package adapters

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"skillsync/internal/ports"
	"skillsync/internal/types"
)

type InstallerFSAdapter struct{}

func NewInstallerFSAdapter() InstallerFSAdapter {
	return InstallerFSAdapter{}
}

// Install copies the package source tree into packagesDir under the
// package name. Any existing destination is removed first, last run
// wins, no merge.
func (a InstallerFSAdapter) Install(ctx context.Context, source types.PackageSource, packagesDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(source.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("package source not found").
				WithCause(err)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat package source").
			WithCause(err)
	}
	if !info.IsDir() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package source is not a directory")
	}
	dest := filepath.Join(packagesDir, source.Name)
	if _, err := os.Stat(dest); err == nil {
		log.Debug().Str("package", source.Name).Msg("replacing existing package directory")
	}
	if err := os.RemoveAll(dest); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to clear existing package directory").
			WithCause(err)
	}
	if err := copyTree(source.Path, dest); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy package contents").
			WithCause(err)
	}
	return nil
}

func copyTree(src string, dest string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)
		switch {
		case entry.IsDir():
			return os.MkdirAll(target, 0755)
		case entry.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		default:
			return copyFile(path, target)
		}
	})
}

func copyFile(src string, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

var _ ports.PackageInstallerPort = InstallerFSAdapter{}
