package vmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/stackvm/cmds"
	"github.com/reusee/stackvm/configs"
	"github.com/reusee/stackvm/logs"
)

//go:embed schema.cue
var schema string

var extraPaths []string

func init() {
	cmds.Define("-config", cmds.Func(func(path string) {
		extraPaths = append(extraPaths, path)
	}).Desc("load a config file before the default locations"))
}

var filenames = []string{
	"stackvm.cue",
	".stackvm.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append(slices.Clone(extraPaths), configPaths()...)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}

// configPaths lists existing config files, highest precedence first.
func configPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
