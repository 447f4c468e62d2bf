package discovery

import (
	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
	"github.com/hazelcast/hazelcast-cluster-config/internal/util"
)

// field maps one credential field to its discovery property key.
// Exactly one of str and port is set.
type field[T any] struct {
	key  string
	str  func(*T) string
	port func(*T) int32
}

func str[T any](key string, get func(*T) string) field[T] {
	return field[T]{key: key, str: get}
}

func port[T any](key string, get func(*T) int32) field[T] {
	return field[T]{key: key, port: get}
}

// project emits the fields that are set, in declaration order. Blank strings
// and non-positive ports are left out entirely.
func project[T any](fields []field[T], src *T) config.Properties {
	props := config.Properties{}
	for _, f := range fields {
		if f.port != nil {
			if v := f.port(src); v > 0 {
				props = append(props, config.Property{Key: f.key, Value: v})
			}
			continue
		}
		if v := f.str(src); util.HasText(v) {
			props = append(props, config.Property{Key: f.key, Value: v})
		}
	}
	return props
}

var awsFields = []field[hazelcastv1alpha1.AWSDiscovery]{
	str(n.AWSAccessKey, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.AccessKey }),
	str(n.AWSSecretKey, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.SecretKey }),
	str(n.AWSIAMRole, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.IAMRole }),
	str(n.AWSHostHeader, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.HostHeader }),
	port(n.AWSPort, func(a *hazelcastv1alpha1.AWSDiscovery) int32 { return a.Port }),
	str(n.AWSRegion, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.Region }),
	str(n.AWSSecurityGroupName, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.SecurityGroupName }),
	str(n.AWSTagKey, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.TagKey }),
	str(n.AWSTagValue, func(a *hazelcastv1alpha1.AWSDiscovery) string { return a.TagValue }),
}

var jcloudsFields = []field[hazelcastv1alpha1.JCloudsDiscovery]{
	str(n.JCloudsCredential, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Credential }),
	str(n.JCloudsCredentialPath, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.CredentialPath }),
	str(n.JCloudsEndpoint, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Endpoint }),
	str(n.JCloudsGroup, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Group }),
	str(n.JCloudsIdentity, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Identity }),
	port(n.JCloudsPort, func(j *hazelcastv1alpha1.JCloudsDiscovery) int32 { return j.Port }),
	str(n.JCloudsProvider, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Provider }),
	str(n.JCloudsRegions, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Regions }),
	str(n.JCloudsRoleName, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.RoleName }),
	str(n.JCloudsTagKeys, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.TagKeys }),
	str(n.JCloudsTagValues, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.TagValues }),
	str(n.JCloudsZones, func(j *hazelcastv1alpha1.JCloudsDiscovery) string { return j.Zones }),
}

var azureFields = []field[hazelcastv1alpha1.AzureDiscovery]{
	str(n.AzureClientID, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.ClientID }),
	str(n.AzureClientSecret, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.ClientSecret }),
	str(n.AzureClusterID, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.ClusterID }),
	str(n.AzureGroupName, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.GroupName }),
	str(n.AzureSubscriptionID, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.SubscriptionID }),
	str(n.AzureTenantID, func(a *hazelcastv1alpha1.AzureDiscovery) string { return a.TenantID }),
}
