package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hazelcast/hazelcast-cluster-config/internal/protocol/types"
)

type HazelcastWrapper struct {
	Hazelcast Hazelcast `yaml:"hazelcast"`
}

type Hazelcast struct {
	InstanceName   string            `yaml:"instance-name,omitempty"`
	Network        Network           `yaml:"network,omitempty"`
	Map            map[string]Map    `yaml:"map,omitempty"`
	PartitionGroup PartitionGroup    `yaml:"partition-group,omitempty"`
	Properties     map[string]string `yaml:"properties,omitempty"`
}

type Network struct {
	Port Port `yaml:"port,omitempty"`
	Join Join `yaml:"join,omitempty"`
}

type Port struct {
	Port          int32 `yaml:"port"`
	AutoIncrement *bool `yaml:"auto-increment,omitempty"`
}

// Join holds either multicast and TCP/IP settings or a single discovery strategy.
type Join struct {
	Multicast           Multicast            `yaml:"multicast"`
	TCPIP               TCPIP                `yaml:"tcp-ip"`
	DiscoveryStrategies *DiscoveryStrategies `yaml:"discovery-strategies,omitempty"`
}

// DiscoveryMode reports whether members are found through a discovery strategy.
func (j Join) DiscoveryMode() bool {
	return j.DiscoveryStrategies != nil
}

type Multicast struct {
	Enabled           bool     `yaml:"enabled"`
	Group             *string  `yaml:"multicast-group,omitempty"`
	Port              *int32   `yaml:"multicast-port,omitempty"`
	TimeoutSeconds    *int32   `yaml:"multicast-timeout-seconds,omitempty"`
	TimeToLive        *int32   `yaml:"multicast-time-to-live,omitempty"`
	TrustedInterfaces []string `yaml:"trusted-interfaces,omitempty"`
}

// TCPIP is the static member join. ConnectionTimeoutSeconds is nil only when
// the join uses discovery, so a zero timeout is still written out.
type TCPIP struct {
	Enabled                  bool     `yaml:"enabled"`
	ConnectionTimeoutSeconds *int32   `yaml:"connection-timeout-seconds,omitempty"`
	Members                  []string `yaml:"member-list,omitempty"`
}

type DiscoveryStrategies struct {
	Strategies []DiscoveryStrategy `yaml:"discovery-strategies"`
}

type DiscoveryStrategy struct {
	Class      string     `yaml:"class"`
	Enabled    bool       `yaml:"enabled"`
	Properties Properties `yaml:"properties,omitempty"`
}

// Property is a single discovery strategy property. Value is a string or an int32.
type Property struct {
	Key   string
	Value interface{}
}

// Properties keeps discovery strategy properties in insertion order.
type Properties []Property

// Get returns the value stored under key.
func (p Properties) Get(key string) (interface{}, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return nil, false
}

// Keys returns the property keys in insertion order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, prop := range p {
		keys = append(keys, prop.Key)
	}
	return keys
}

func (p Properties) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, prop := range p {
		var v yaml.Node
		if err := v.Encode(prop.Value); err != nil {
			return nil, fmt.Errorf("encoding property %s: %w", prop.Key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: prop.Key},
			&v,
		)
	}
	return node, nil
}

func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping, got kind %d", value.Kind)
	}
	props := make(Properties, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		var v interface{}
		if value.Content[i+1].ShortTag() == "!!int" {
			var iv int32
			if err := value.Content[i+1].Decode(&iv); err != nil {
				return err
			}
			v = iv
		} else {
			var sv string
			if err := value.Content[i+1].Decode(&sv); err != nil {
				return err
			}
			v = sv
		}
		props = append(props, Property{Key: value.Content[i].Value, Value: v})
	}
	*p = props
	return nil
}

// Map is the storage policy of a single named map.
type Map struct {
	Name             string      `yaml:"-"`
	BackupCount      int32       `yaml:"backup-count"`
	AsyncBackupCount int32       `yaml:"async-backup-count"`
	MaxIdleSeconds   int32       `yaml:"max-idle-seconds"`
	Eviction         MapEviction `yaml:"eviction,omitempty"`
}

type MapEviction struct {
	Size           int32                    `yaml:"size"`
	MaxSizePolicy  types.MaxSizePolicyType  `yaml:"max-size-policy,omitempty"`
	EvictionPolicy types.EvictionPolicyType `yaml:"eviction-policy,omitempty"`
}

type PartitionGroup struct {
	Enabled   *bool                    `yaml:"enabled,omitempty"`
	GroupType types.PartitionGroupType `yaml:"group-type,omitempty"`
}

// IsEnabled reports whether partition grouping was switched on.
func (p PartitionGroup) IsEnabled() bool {
	return p.Enabled != nil && *p.Enabled
}
