package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/clients/internal/clients/domain"
)

// platformAPIs are the platform services every client is subscribed to.
var platformAPIs = []string{
	"Apps",
	"Files",
	"Jobs",
	"Meta",
	"Monitors",
	"Notifications",
	"Postits",
	"Profiles",
	"Systems",
	"Transforms",
}

// apisFile is the layout of CLIENTS_APIS_FILE:
//
//	apis:
//	  - name: Tenants
//	    version: v1
//	    provider: ops
type apisFile struct {
	APIs []domain.API `yaml:"apis"`
}

// LoadAPIs builds the default API set: the platform APIs at version,
// published by admin, followed by the entries of path when it is non-empty.
func LoadAPIs(path, version string) (domain.APISet, error) {
	apis := make([]domain.API, 0, len(platformAPIs))
	for _, name := range platformAPIs {
		apis = append(apis, domain.API{Name: name, Version: version, Provider: "admin"})
	}

	if path == "" {
		return domain.NewAPISet(apis...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.APISet{}, fmt.Errorf("read APIs file: %w", err)
	}

	var file apisFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.APISet{}, fmt.Errorf("parse APIs file %s: %w", path, err)
	}

	var errs []error
	for i, api := range file.APIs {
		if api.Name == "" || api.Version == "" || api.Provider == "" {
			errs = append(errs, fmt.Errorf("entry %d: name, version and provider are required", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return domain.APISet{}, fmt.Errorf("invalid APIs file %s: %w", path, err)
	}

	return domain.NewAPISet(append(apis, file.APIs...)...), nil
}
