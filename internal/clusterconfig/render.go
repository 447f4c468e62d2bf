package clusterconfig

import (
	"crypto/sha256"
	"encoding/hex"

	"gopkg.in/yaml.v3"

	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
)

// ConfigData renders cfg in the form a member reads it from its config directory.
func ConfigData(cfg *config.Hazelcast) (map[string]string, error) {
	yml, err := yaml.Marshal(config.HazelcastWrapper{Hazelcast: *cfg})
	if err != nil {
		return nil, err
	}
	return map[string]string{n.HazelcastConfigFile: string(yml)}, nil
}

// Checksum fingerprints the rendered configuration.
func Checksum(cfg *config.Hazelcast) (string, error) {
	data, err := ConfigData(cfg)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256([]byte(data[n.HazelcastConfigFile]))
	return hex.EncodeToString(sum[:]), nil
}
