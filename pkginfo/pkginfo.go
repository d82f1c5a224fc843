// Package pkginfo reads identifying metadata from an Android package manifest.
package pkginfo

import (
	"fmt"

	"github.com/shogo82148/androidbinary/apk"
)

type Info struct {
	Package     string `json:"package" yaml:"package"`
	VersionName string `json:"version_name,omitempty" yaml:"version_name,omitempty"`
}

func (i *Info) String() string {
	if i == nil || i.Package == "" {
		return ""
	}

	if i.VersionName == "" {
		return i.Package
	}

	return fmt.Sprintf("%s (%s)", i.Package, i.VersionName)
}

func Read(path string) (*Info, error) {
	pkg, err := apk.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open package %s: %w", path, err)
	}
	defer pkg.Close()

	manifest := pkg.Manifest()
	name, err := manifest.Package.String()
	if err != nil {
		return nil, fmt.Errorf("unable to resolve package name of %s: %w", path, err)
	}

	info := &Info{Package: name}
	if v, err := manifest.VersionName.String(); err == nil {
		info.VersionName = v
	}

	return info, nil
}
