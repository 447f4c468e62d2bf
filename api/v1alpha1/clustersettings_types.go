package v1alpha1

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
	"github.com/hazelcast/hazelcast-cluster-config/internal/util"
)

// ClusterSettings defines the desired state of a Hazelcast member and the way it joins its cluster
type ClusterSettings struct {
	// Name of the Hazelcast member instance.
	// +kubebuilder:default:="localhost"
	// +optional
	InstanceName string `json:"instanceName,omitempty"`

	// Port the member listens on.
	// +kubebuilder:default:=5701
	// +optional
	Port int32 `json:"port,omitempty"`

	// When true, the member tries the following ports if the configured one is taken.
	// +kubebuilder:default:=true
	// +optional
	PortAutoIncrement bool `json:"portAutoIncrement"`

	// Count of synchronous backups of each map.
	// +kubebuilder:default:=1
	// +optional
	BackupCount int32 `json:"backupCount"`

	// Count of asynchronous backups of each map.
	// +kubebuilder:default:=0
	// +optional
	AsyncBackupCount int32 `json:"asyncBackupCount"`

	// Eviction policy applied when a map reaches its max size.
	// +kubebuilder:default:="LRU"
	// +optional
	EvictionPolicy string `json:"evictionPolicy,omitempty"`

	// Policy for deciding if the max size of a map is reached.
	// +kubebuilder:default:="USED_HEAP_PERCENTAGE"
	// +optional
	MaxSizePolicy string `json:"maxSizePolicy,omitempty"`

	// Max size of each map, interpreted according to the max size policy.
	// +kubebuilder:default:=85
	// +optional
	MaxHeapSizePercentage int32 `json:"maxHeapSizePercentage"`

	// Logging framework used by the member.
	// +kubebuilder:default:="slf4j"
	// +optional
	LoggingType string `json:"loggingType,omitempty"`

	// Seconds after which a member that sent no heartbeat is removed from the cluster.
	// +kubebuilder:default:=300
	// +optional
	MaxNoHeartbeatSeconds int32 `json:"maxNoHeartbeatSeconds"`

	// When true, the member prefers the IPv4 stack.
	// +optional
	IPv4Enabled bool `json:"ipv4Enabled"`

	// Type of the partition member group. Empty leaves partition grouping disabled.
	// +optional
	PartitionMemberGroupType string `json:"partitionMemberGroupType,omitempty"`

	// Addresses of the members used by the TCP/IP join.
	// +optional
	Members []string `json:"members,omitempty"`

	// When true, the member joins the cluster using the static member list.
	// +kubebuilder:default:=true
	// +optional
	TCPIPEnabled bool `json:"tcpipEnabled"`

	// Connection timeout in seconds of the TCP/IP join.
	// +kubebuilder:default:=5
	// +optional
	Timeout int32 `json:"timeout"`

	// Multicast join configuration.
	// +optional
	Multicast MulticastSettings `json:"multicast,omitempty"`

	// Cloud discovery configuration.
	// +optional
	Discovery DiscoverySettings `json:"discovery,omitempty"`
}

type MulticastSettings struct {
	// +optional
	Enabled bool `json:"enabled"`

	// Multicast group address.
	// +kubebuilder:default:="224.2.2.3"
	// +optional
	Group string `json:"group,omitempty"`

	// +kubebuilder:default:=54327
	// +optional
	Port int32 `json:"port,omitempty"`

	// Seconds a member waits for a multicast response.
	// +kubebuilder:default:=2
	// +optional
	Timeout int32 `json:"timeout"`

	// Time-to-live of multicast packets.
	// +kubebuilder:default:=32
	// +optional
	TimeToLive int32 `json:"timeToLive"`

	// Comma separated list of interfaces trusted for multicast.
	// +optional
	TrustedInterfaces string `json:"trustedInterfaces,omitempty"`
}

// DiscoverySettings holds one credential set per supported cloud provider
type DiscoverySettings struct {
	// When true, members are discovered through a cloud provider instead of multicast and TCP/IP.
	// +optional
	Enabled bool `json:"enabled"`

	// +optional
	AWS AWSDiscovery `json:"aws,omitempty"`

	// +optional
	JClouds JCloudsDiscovery `json:"jclouds,omitempty"`

	// +optional
	Azure AzureDiscovery `json:"azure,omitempty"`
}

type AWSDiscovery struct {
	AccessKey         string `json:"accessKey,omitempty"`
	SecretKey         string `json:"secretKey,omitempty"`
	IAMRole           string `json:"iamRole,omitempty"`
	HostHeader        string `json:"hostHeader,omitempty"`
	Port              int32  `json:"port,omitempty"`
	Region            string `json:"region,omitempty"`
	SecurityGroupName string `json:"securityGroupName,omitempty"`
	TagKey            string `json:"tagKey,omitempty"`
	TagValue          string `json:"tagValue,omitempty"`
}

// IsComplete returns true when the access key, the secret key and the IAM role all have text
func (a *AWSDiscovery) IsComplete() bool {
	return util.HasText(a.AccessKey) && util.HasText(a.SecretKey) && util.HasText(a.IAMRole)
}

type JCloudsDiscovery struct {
	Credential     string `json:"credential,omitempty"`
	CredentialPath string `json:"credentialPath,omitempty"`
	Endpoint       string `json:"endpoint,omitempty"`
	Group          string `json:"group,omitempty"`
	Identity       string `json:"identity,omitempty"`
	Port           int32  `json:"port,omitempty"`
	Provider       string `json:"provider,omitempty"`
	Regions        string `json:"regions,omitempty"`
	RoleName       string `json:"roleName,omitempty"`
	TagKeys        string `json:"tagKeys,omitempty"`
	TagValues      string `json:"tagValues,omitempty"`
	Zones          string `json:"zones,omitempty"`
}

// IsComplete returns true when the credential, the identity and the provider all have text
func (j *JCloudsDiscovery) IsComplete() bool {
	return util.HasText(j.Credential) && util.HasText(j.Identity) && util.HasText(j.Provider)
}

type AzureDiscovery struct {
	ClientID       string `json:"clientId,omitempty"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	ClusterID      string `json:"clusterId,omitempty"`
	GroupName      string `json:"groupName,omitempty"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	TenantID       string `json:"tenantId,omitempty"`
}

// IsComplete returns true when the client id, the client secret and the cluster id all have text
func (a *AzureDiscovery) IsComplete() bool {
	return util.HasText(a.ClientID) && util.HasText(a.ClientSecret) && util.HasText(a.ClusterID)
}

// DefaultClusterSettings returns the settings used when nothing is configured
func DefaultClusterSettings() ClusterSettings {
	return ClusterSettings{
		InstanceName:          n.DefaultInstanceName,
		Port:                  n.DefaultHzPort,
		PortAutoIncrement:     true,
		BackupCount:           n.DefaultMapBackupCount,
		AsyncBackupCount:      n.DefaultMapAsyncBackupCount,
		EvictionPolicy:        n.DefaultMapEvictionPolicy,
		MaxSizePolicy:         n.DefaultMapMaxSizePolicy,
		MaxHeapSizePercentage: n.DefaultMapMaxHeapSizePercentage,
		LoggingType:           n.DefaultLoggingType,
		MaxNoHeartbeatSeconds: n.DefaultMaxNoHeartbeatSeconds,
		Members:               []string{n.DefaultMembers},
		TCPIPEnabled:          true,
		Timeout:               n.DefaultTCPIPTimeoutSeconds,
		Multicast: MulticastSettings{
			Group:      n.DefaultMulticastGroup,
			Port:       n.DefaultMulticastPort,
			Timeout:    n.DefaultMulticastTimeoutSeconds,
			TimeToLive: n.DefaultMulticastTimeToLive,
		},
	}
}

// LoadClusterSettings decodes the YAML or JSON file at path on top of DefaultClusterSettings.
func LoadClusterSettings(path string) (*ClusterSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cluster settings: %w", err)
	}
	return ParseClusterSettings(data)
}

// ParseClusterSettings decodes data on top of DefaultClusterSettings.
func ParseClusterSettings(data []byte) (*ClusterSettings, error) {
	s := DefaultClusterSettings()
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("decoding cluster settings: %w", err)
	}
	return &s, nil
}
