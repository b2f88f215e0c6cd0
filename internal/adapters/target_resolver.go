package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/adrg/xdg"

	"skillsync/internal/ports"
	"skillsync/internal/types"
)

// packagesSubdir is the fixed directory the host application scans for
// installed packages, always a direct child of its config root.
const packagesSubdir = "skills"

type TargetResolverAdapter struct {
	GOOS string
}

func NewTargetResolverAdapter() TargetResolverAdapter {
	return TargetResolverAdapter{GOOS: runtime.GOOS}
}

func (a TargetResolverAdapter) Resolve(hostName string) (types.TargetLayout, error) {
	name := strings.TrimSpace(hostName)
	if name == "" {
		return types.TargetLayout{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("host application name is required")
	}
	var root string
	switch a.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(xdg.Home, "AppData", "Roaming")
		}
		root = filepath.Join(appData, name)
	case "darwin":
		root = filepath.Join(xdg.Home, "Library", "Application Support", name)
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "aix":
		root = filepath.Join(xdg.Home, ".config", name)
	default:
		// No fallback: a guessed path would install packages the host
		// never reads.
		return types.TargetLayout{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("unsupported platform: %s", a.GOOS))
	}
	return types.TargetLayout{
		HostConfigRoot: root,
		PackagesDir:    filepath.Join(root, packagesSubdir),
	}, nil
}

var _ ports.TargetResolverPort = TargetResolverAdapter{}
