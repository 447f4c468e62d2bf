package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPolicyName is returned when an eviction or max-size policy name is not recognized.
	ErrInvalidPolicyName = errors.New("invalid policy name")
	// ErrInvalidPartitionGroupType is returned when a partition member group type is not recognized.
	ErrInvalidPartitionGroupType = errors.New("invalid partition group type")
)

// +kubebuilder:validation:Enum=PER_NODE;PER_PARTITION;USED_HEAP_SIZE;USED_HEAP_PERCENTAGE;FREE_HEAP_SIZE;FREE_HEAP_PERCENTAGE;USED_NATIVE_MEMORY_SIZE;USED_NATIVE_MEMORY_PERCENTAGE;FREE_NATIVE_MEMORY_SIZE;FREE_NATIVE_MEMORY_PERCENTAGE
type MaxSizePolicyType string

const (
	// Maximum number of map entries in each cluster member.
	// You cannot set the max-size to a value lower than the partition count (which is 271 by default).
	MaxSizePolicyPerNode MaxSizePolicyType = "PER_NODE"

	// Maximum number of map entries within each partition.
	MaxSizePolicyPerPartition MaxSizePolicyType = "PER_PARTITION"

	// Maximum used heap size percentage per map for each Hazelcast instance.
	// If, for example, JVM is configured to have 1000 MB and this value is 10, then the map entries will be evicted when used heap size
	// exceeds 100 MB.
	MaxSizePolicyUsedHeapPercentage MaxSizePolicyType = "USED_HEAP_PERCENTAGE"

	// Maximum used heap size in megabytes per map for each Hazelcast instance.
	MaxSizePolicyUsedHeapSize MaxSizePolicyType = "USED_HEAP_SIZE"

	// Minimum free heap size percentage for each Hazelcast instance.
	MaxSizePolicyFreeHeapPercentage MaxSizePolicyType = "FREE_HEAP_PERCENTAGE"

	// Minimum free heap size in megabytes for each Hazelcast instance.
	MaxSizePolicyFreeHeapSize MaxSizePolicyType = "FREE_HEAP_SIZE"

	// Maximum used native memory size in megabytes per map for each Hazelcast instance. It is available only in
	// Hazelcast Enterprise HD.
	MaxSizePolicyUsedNativeMemorySize MaxSizePolicyType = "USED_NATIVE_MEMORY_SIZE"

	// Maximum used native memory size percentage per map for each Hazelcast instance. It is available only in
	// Hazelcast Enterprise HD.
	MaxSizePolicyUsedNativeMemoryPercentage MaxSizePolicyType = "USED_NATIVE_MEMORY_PERCENTAGE"

	// Minimum free native memory size in megabytes for each Hazelcast instance. It is available only in
	// Hazelcast Enterprise HD.
	MaxSizePolicyFreeNativeMemorySize MaxSizePolicyType = "FREE_NATIVE_MEMORY_SIZE"

	// Minimum free native memory size percentage for each Hazelcast instance. It is available only in
	// Hazelcast Enterprise HD.
	MaxSizePolicyFreeNativeMemoryPercentage MaxSizePolicyType = "FREE_NATIVE_MEMORY_PERCENTAGE"
)

var maxSizePolicies = []MaxSizePolicyType{
	MaxSizePolicyPerNode,
	MaxSizePolicyPerPartition,
	MaxSizePolicyUsedHeapPercentage,
	MaxSizePolicyUsedHeapSize,
	MaxSizePolicyFreeHeapPercentage,
	MaxSizePolicyFreeHeapSize,
	MaxSizePolicyUsedNativeMemorySize,
	MaxSizePolicyUsedNativeMemoryPercentage,
	MaxSizePolicyFreeNativeMemorySize,
	MaxSizePolicyFreeNativeMemoryPercentage,
}

// ParseMaxSizePolicy returns the max size policy with exactly the given name.
func ParseMaxSizePolicy(name string) (MaxSizePolicyType, error) {
	for _, p := range maxSizePolicies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: max size policy %q", ErrInvalidPolicyName, name)
}

// +kubebuilder:validation:Enum=NONE;LRU;LFU;RANDOM
type EvictionPolicyType string

const (
	// Least recently used entries will be removed.
	EvictionPolicyLRU EvictionPolicyType = "LRU"

	// Least frequently used entries will be removed.
	EvictionPolicyLFU EvictionPolicyType = "LFU"

	// No eviction.
	EvictionPolicyNone EvictionPolicyType = "NONE"

	// Randomly selected entries will be removed.
	EvictionPolicyRandom EvictionPolicyType = "RANDOM"
)

var evictionPolicies = []EvictionPolicyType{
	EvictionPolicyLRU,
	EvictionPolicyLFU,
	EvictionPolicyNone,
	EvictionPolicyRandom,
}

// ParseEvictionPolicy returns the eviction policy with exactly the given name.
func ParseEvictionPolicy(name string) (EvictionPolicyType, error) {
	for _, p := range evictionPolicies {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: eviction policy %q", ErrInvalidPolicyName, name)
}

// +kubebuilder:validation:Enum=HOST_AWARE;CUSTOM;PER_MEMBER;ZONE_AWARE;SPI;NODE_AWARE;PLACEMENT_AWARE
type PartitionGroupType string

const (
	// Members running on the same host are placed in the same group.
	PartitionGroupHostAware PartitionGroupType = "HOST_AWARE"

	// Groups are defined by explicit member interface lists.
	PartitionGroupCustom PartitionGroupType = "CUSTOM"

	// Every member is its own group.
	PartitionGroupPerMember PartitionGroupType = "PER_MEMBER"

	// Members in the same availability zone are placed in the same group.
	PartitionGroupZoneAware PartitionGroupType = "ZONE_AWARE"

	// Groups are provided by the discovery service.
	PartitionGroupSPI PartitionGroupType = "SPI"

	// Members running on the same Kubernetes node are placed in the same group.
	PartitionGroupNodeAware PartitionGroupType = "NODE_AWARE"

	// Members sharing a placement group are placed in the same group.
	PartitionGroupPlacementAware PartitionGroupType = "PLACEMENT_AWARE"
)

var partitionGroupTypes = []PartitionGroupType{
	PartitionGroupHostAware,
	PartitionGroupCustom,
	PartitionGroupPerMember,
	PartitionGroupZoneAware,
	PartitionGroupSPI,
	PartitionGroupNodeAware,
	PartitionGroupPlacementAware,
}

// ParsePartitionGroupType matches name against the known group types ignoring case.
func ParsePartitionGroupType(name string) (PartitionGroupType, error) {
	upper := strings.ToUpper(name)
	for _, t := range partitionGroupTypes {
		if string(t) == upper {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPartitionGroupType, name)
}
