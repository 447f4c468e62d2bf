package naming

// Hazelcast instance properties set on every generated configuration
const (
	// DiscoveryEnabledProperty toggles the discovery SPI on the member
	DiscoveryEnabledProperty = "hazelcast.discovery.enabled"
	// PreferIPv4StackProperty forces the member to bind on IPv4 addresses only
	PreferIPv4StackProperty = "hazelcast.prefer.ipv4.stack"
	// LoggingTypeProperty selects the logging framework of the member
	LoggingTypeProperty = "hazelcast.logging.type"
	// MaxNoHeartbeatSecondsProperty is the timeout after which a silent member is removed
	MaxNoHeartbeatSecondsProperty = "hazelcast.max.no.heartbeat.seconds"

	// HazelcastConfigFile is the key under which the rendered member configuration is stored
	HazelcastConfigFile = "hazelcast.yaml"
)

// Discovery strategy implementations
const (
	AWSDiscoveryStrategyClass     = "com.hazelcast.aws.AwsDiscoveryStrategy"
	JCloudsDiscoveryStrategyClass = "com.hazelcast.jclouds.JCloudsDiscoveryStrategy"
	AzureDiscoveryStrategyClass   = "com.hazelcast.azure.AzureDiscoveryStrategy"
)

// AWS discovery properties
const (
	AWSAccessKey         = "access-key"
	AWSSecretKey         = "secret-key"
	AWSIAMRole           = "iam-role"
	AWSHostHeader        = "host-header"
	AWSPort              = "hz-port"
	AWSRegion            = "region"
	AWSSecurityGroupName = "security-group-name"
	AWSTagKey            = "tag-key"
	AWSTagValue          = "tag-value"
)

// JClouds discovery properties
const (
	JCloudsCredential     = "credential"
	JCloudsCredentialPath = "credentialPath"
	JCloudsEndpoint       = "endpoint"
	JCloudsGroup          = "group"
	JCloudsIdentity       = "identity"
	JCloudsPort           = "hz-port"
	JCloudsProvider       = "provider"
	JCloudsRegions        = "regions"
	JCloudsRoleName       = "role-name"
	JCloudsTagKeys        = "tag-keys"
	JCloudsTagValues      = "tag-values"
	JCloudsZones          = "zones"
)

// Azure discovery properties
const (
	AzureClientID       = "client-id"
	AzureClientSecret   = "client-secret"
	AzureClusterID      = "cluster-id"
	AzureGroupName      = "group-name"
	AzureSubscriptionID = "subscription-id"
	AzureTenantID       = "tenant-id"
)

// Hazelcast default configurations
const (
	// DefaultHzPort Hazelcast default port
	DefaultHzPort = 5701
	// DefaultInstanceName default name of the Hazelcast member instance
	DefaultInstanceName = "localhost"
	// DefaultMembers default static member list
	DefaultMembers = "localhost"
	// DefaultTCPIPTimeoutSeconds connection timeout of the static member join
	DefaultTCPIPTimeoutSeconds = 5
	// DefaultLoggingType logging framework used by the member
	DefaultLoggingType = "slf4j"
	// DefaultMaxNoHeartbeatSeconds heartbeat timeout of a member
	DefaultMaxNoHeartbeatSeconds = 300
)

// Map Config default values
const (
	DefaultMapBackupCount           = int32(1)
	DefaultMapAsyncBackupCount      = int32(0)
	DefaultMapEvictionPolicy        = "LRU"
	DefaultMapMaxSizePolicy         = "USED_HEAP_PERCENTAGE"
	DefaultMapMaxHeapSizePercentage = int32(85)
)

// Multicast default values
const (
	DefaultMulticastGroup          = "224.2.2.3"
	DefaultMulticastPort           = 54327
	DefaultMulticastTimeoutSeconds = 2
	DefaultMulticastTimeToLive     = 32
)

// Operator Values
const (
	DeveloperModeEnabledEnv = "DEVELOPER_MODE_ENABLED"
	SettingsFileEnv         = "HAZELCAST_SETTINGS_FILE"
)
