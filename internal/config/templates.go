package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "inspector":
		return inspectorTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const inspectorTemplate = `name = "wirekit-inspect"
addr = ":9400"
advertise_host = "inspect.local"
advertise_port = 9400
cors_origins = ["http://localhost:3000"]
auth_token = ""
max_body_bytes = 8388608
data_dir = "local/data"
`
