package discovery

import (
	"errors"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
)

// ErrNoDiscoveryProviderConfigured is returned when discovery is enabled but no
// provider has all of its required credentials set.
var ErrNoDiscoveryProviderConfigured = errors.New("could not create discovery strategy configuration: no discovery provider is defined in the settings")

// Provider identifies the cloud discovery mechanism selected for a cluster.
type Provider int

const (
	None Provider = iota
	AWS
	JClouds
	Azure
)

func (p Provider) String() string {
	switch p {
	case AWS:
		return "AWS"
	case JClouds:
		return "JClouds"
	case Azure:
		return "Azure"
	default:
		return "None"
	}
}

// precedence lists the providers in the order they are tried.
var precedence = []Provider{AWS, JClouds, Azure}

func isComplete(p Provider, d *hazelcastv1alpha1.DiscoverySettings) bool {
	switch p {
	case AWS:
		return d.AWS.IsComplete()
	case JClouds:
		return d.JClouds.IsComplete()
	case Azure:
		return d.Azure.IsComplete()
	}
	return false
}

// Classify returns the first provider, in precedence order, whose required credentials are all set.
func Classify(d hazelcastv1alpha1.DiscoverySettings) Provider {
	for _, p := range precedence {
		if isComplete(p, &d) {
			return p
		}
	}
	return None
}

// CompleteProviders returns every provider whose required credentials are set, in precedence order.
func CompleteProviders(d hazelcastv1alpha1.DiscoverySettings) []Provider {
	var ps []Provider
	for _, p := range precedence {
		if isComplete(p, &d) {
			ps = append(ps, p)
		}
	}
	return ps
}

// Descriptor is the discovery strategy built for the selected provider.
type Descriptor struct {
	Provider   Provider
	Class      string
	Properties config.Properties
}

// Strategy converts the descriptor into the strategy entry of a join configuration.
func (d Descriptor) Strategy() config.DiscoveryStrategy {
	return config.DiscoveryStrategy{
		Class:      d.Class,
		Enabled:    true,
		Properties: d.Properties,
	}
}

// Resolve classifies the credentials and builds the descriptor of the winning provider.
func Resolve(d hazelcastv1alpha1.DiscoverySettings) (Descriptor, error) {
	switch p := Classify(d); p {
	case AWS:
		return Descriptor{Provider: p, Class: n.AWSDiscoveryStrategyClass, Properties: project(awsFields, &d.AWS)}, nil
	case JClouds:
		return Descriptor{Provider: p, Class: n.JCloudsDiscoveryStrategyClass, Properties: project(jcloudsFields, &d.JClouds)}, nil
	case Azure:
		return Descriptor{Provider: p, Class: n.AzureDiscoveryStrategyClass, Properties: project(azureFields, &d.Azure)}, nil
	default:
		return Descriptor{}, ErrNoDiscoveryProviderConfigured
	}
}
