package v1alpha1

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ValidateClusterSettings reports every structural problem of s at once.
// Policy names, the partition group type and the discovery credentials are
// checked when the configuration is built.
func ValidateClusterSettings(s *ClusterSettings) error {
	var err error
	err = multierr.Append(err, validatePort("port", s.Port))
	if s.BackupCount < 0 {
		err = multierr.Append(err, errors.New("backupCount must not be negative"))
	}
	if s.AsyncBackupCount < 0 {
		err = multierr.Append(err, errors.New("asyncBackupCount must not be negative"))
	}
	if s.MaxHeapSizePercentage < 0 || s.MaxHeapSizePercentage > 100 {
		err = multierr.Append(err, fmt.Errorf("maxHeapSizePercentage must be between 0 and 100, got %d", s.MaxHeapSizePercentage))
	}
	if s.MaxNoHeartbeatSeconds < 0 {
		err = multierr.Append(err, errors.New("maxNoHeartbeatSeconds must not be negative"))
	}
	if s.Timeout < 0 {
		err = multierr.Append(err, errors.New("timeout must not be negative"))
	}
	if s.Multicast.Enabled {
		err = multierr.Append(err, validateMulticast(&s.Multicast))
	}
	for _, p := range []struct {
		name string
		port int32
	}{
		{"discovery.aws.port", s.Discovery.AWS.Port},
		{"discovery.jclouds.port", s.Discovery.JClouds.Port},
	} {
		if p.port != 0 {
			err = multierr.Append(err, validatePort(p.name, p.port))
		}
	}
	return err
}

func validateMulticast(m *MulticastSettings) error {
	var err error
	if m.Group == "" {
		err = multierr.Append(err, errors.New("multicast.group must be set when multicast is enabled"))
	}
	err = multierr.Append(err, validatePort("multicast.port", m.Port))
	if m.Timeout < 0 {
		err = multierr.Append(err, errors.New("multicast.timeout must not be negative"))
	}
	if m.TimeToLive < 0 || m.TimeToLive > 255 {
		err = multierr.Append(err, fmt.Errorf("multicast.timeToLive must be between 0 and 255, got %d", m.TimeToLive))
	}
	return err
}

func validatePort(name string, port int32) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return nil
}
