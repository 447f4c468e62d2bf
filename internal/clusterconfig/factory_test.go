package clusterconfig

import (
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"

	hazelcastv1alpha1 "github.com/hazelcast/hazelcast-cluster-config/api/v1alpha1"
	"github.com/hazelcast/hazelcast-cluster-config/internal/config"
	n "github.com/hazelcast/hazelcast-cluster-config/internal/naming"
	"github.com/hazelcast/hazelcast-cluster-config/internal/protocol/types"
)

func defaultSettings() *hazelcastv1alpha1.ClusterSettings {
	s := hazelcastv1alpha1.DefaultClusterSettings()
	return &s
}

var _ = Describe("Map policy", func() {
	It("should copy the storage settings of the cluster", func() {
		s := defaultSettings()
		s.BackupCount = 2
		s.AsyncBackupCount = 1

		m, err := factory.BuildMapPolicy(s, "ticketRegistry", 28800)
		Expect(err).ToNot(HaveOccurred())
		Expect(m).To(Equal(config.Map{
			Name:             "ticketRegistry",
			MaxIdleSeconds:   28800,
			BackupCount:      2,
			AsyncBackupCount: 1,
			Eviction: config.MapEviction{
				EvictionPolicy: types.EvictionPolicyLRU,
				MaxSizePolicy:  types.MaxSizePolicyUsedHeapPercentage,
				Size:           85,
			},
		}))
	})

	DescribeTable("should reject unknown policy names",
		func(eviction, maxSize string) {
			s := defaultSettings()
			s.EvictionPolicy = eviction
			s.MaxSizePolicy = maxSize
			_, err := factory.BuildMapPolicy(s, "ticketRegistry", 10)
			Expect(err).To(MatchError(ErrInvalidPolicyName))
		},
		Entry("lower case eviction policy", "lru", "USED_HEAP_PERCENTAGE"),
		Entry("unknown eviction policy", "FIFO", "PER_NODE"),
		Entry("lower case max size policy", "LFU", "per_node"),
		Entry("empty max size policy", "NONE", ""),
	)

	DescribeTable("should fit the idle timeout into seconds",
		func(in int64, want int32) {
			m, err := factory.BuildMapPolicy(defaultSettings(), "m", in)
			Expect(err).ToNot(HaveOccurred())
			Expect(m.MaxIdleSeconds).To(Equal(want))
		},
		Entry("zero", int64(0), int32(0)),
		Entry("negative", int64(-5), int32(0)),
		Entry("too large", int64(math.MaxInt64), int32(math.MaxInt32)),
	)
})

var _ = Describe("Join configuration", func() {
	Context("without discovery", func() {
		It("should keep multicast settings unset when multicast is disabled", func() {
			s := defaultSettings()
			s.Members = []string{"10.0.0.1", "10.0.0.2:5701"}
			s.Timeout = 7
			s.Multicast.TrustedInterfaces = "10.0.0.*"

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.DiscoveryMode()).To(BeFalse())
			Expect(j.TCPIP).To(Equal(config.TCPIP{
				Enabled:                  true,
				Members:                  []string{"10.0.0.1", "10.0.0.2:5701"},
				ConnectionTimeoutSeconds: pointer.Int32(7),
			}))
			Expect(j.Multicast).To(Equal(config.Multicast{Enabled: false}))
		})

		It("should follow the TCP/IP enabled flag", func() {
			s := defaultSettings()
			s.TCPIPEnabled = false

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.TCPIP.Enabled).To(BeFalse())
			Expect(j.TCPIP.Members).To(Equal([]string{n.DefaultMembers}))
		})

		It("should populate multicast when it is enabled", func() {
			s := defaultSettings()
			s.Multicast.Enabled = true
			s.Multicast.TrustedInterfaces = "10.0.0.*, 192.168.1.1,10.0.0.*"

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.Multicast).To(Equal(config.Multicast{
				Enabled:           true,
				Group:             pointer.String(n.DefaultMulticastGroup),
				Port:              pointer.Int32(n.DefaultMulticastPort),
				TimeoutSeconds:    pointer.Int32(n.DefaultMulticastTimeoutSeconds),
				TimeToLive:        pointer.Int32(n.DefaultMulticastTimeToLive),
				TrustedInterfaces: []string{"10.0.0.*", "192.168.1.1"},
			}))
			Expect(j.TCPIP.Enabled).To(BeTrue())
		})

		It("should leave trusted interfaces unset when none are given", func() {
			s := defaultSettings()
			s.Multicast.Enabled = true
			s.Multicast.TrustedInterfaces = " , "

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.Multicast.TrustedInterfaces).To(BeNil())
		})

		It("should not share the member list with the settings", func() {
			s := defaultSettings()
			s.Members = []string{"10.0.0.1"}
			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())

			s.Members[0] = "10.0.0.9"
			Expect(j.TCPIP.Members).To(Equal([]string{"10.0.0.1"}))
		})
	})

	Context("with discovery", func() {
		It("should use the only complete provider and disable multicast and TCP/IP", func() {
			s := defaultSettings()
			s.Multicast.Enabled = true
			s.Members = []string{"10.0.0.1"}
			s.Discovery = hazelcastv1alpha1.DiscoverySettings{
				Enabled: true,
				AWS:     hazelcastv1alpha1.AWSDiscovery{AccessKey: "ak"},
				Azure: hazelcastv1alpha1.AzureDiscovery{
					ClientID: "client", ClientSecret: "secret", ClusterID: "cluster", TenantID: "tenant",
				},
			}

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.DiscoveryMode()).To(BeTrue())
			Expect(j.Multicast).To(Equal(config.Multicast{Enabled: false}))
			Expect(j.TCPIP).To(Equal(config.TCPIP{Enabled: false}))
			Expect(j.DiscoveryStrategies.Strategies).To(HaveLen(1))

			strategy := j.DiscoveryStrategies.Strategies[0]
			Expect(strategy.Class).To(Equal(n.AzureDiscoveryStrategyClass))
			Expect(strategy.Enabled).To(BeTrue())
			Expect(strategy.Properties).To(Equal(config.Properties{
				{Key: n.AzureClientID, Value: "client"},
				{Key: n.AzureClientSecret, Value: "secret"},
				{Key: n.AzureClusterID, Value: "cluster"},
				{Key: n.AzureTenantID, Value: "tenant"},
			}))
		})

		It("should prefer AWS when every provider is complete", func() {
			s := defaultSettings()
			s.Discovery = hazelcastv1alpha1.DiscoverySettings{
				Enabled: true,
				AWS:     hazelcastv1alpha1.AWSDiscovery{AccessKey: "ak", SecretKey: "sk", IAMRole: "role"},
				JClouds: hazelcastv1alpha1.JCloudsDiscovery{Credential: "c", Identity: "i", Provider: "p"},
				Azure:   hazelcastv1alpha1.AzureDiscovery{ClientID: "id", ClientSecret: "s", ClusterID: "c"},
			}

			j, err := factory.BuildJoin(s)
			Expect(err).ToNot(HaveOccurred())
			Expect(j.DiscoveryStrategies.Strategies[0].Class).To(Equal(n.AWSDiscoveryStrategyClass))
		})

		It("should fail when no provider is complete", func() {
			s := defaultSettings()
			s.Discovery.Enabled = true
			s.Discovery.JClouds.Identity = "id"

			_, err := factory.BuildJoin(s)
			Expect(err).To(MatchError(ErrNoDiscoveryProviderConfigured))
		})
	})
})

var _ = Describe("Cluster configuration", func() {
	It("should assemble network, properties and maps", func() {
		s := defaultSettings()
		s.InstanceName = "cas"
		s.Port = 5801
		s.PortAutoIncrement = false
		s.IPv4Enabled = true
		s.MaxNoHeartbeatSeconds = 120

		m, err := factory.BuildMapPolicy(s, "ticketRegistry", 28800)
		Expect(err).ToNot(HaveOccurred())

		cfg, err := factory.BuildWithMap(s, m)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.InstanceName).To(Equal("cas"))
		Expect(cfg.Network.Port).To(Equal(config.Port{Port: 5801, AutoIncrement: pointer.Bool(false)}))
		Expect(cfg.Network.Join.DiscoveryMode()).To(BeFalse())
		Expect(cfg.Properties).To(Equal(map[string]string{
			n.DiscoveryEnabledProperty:      "false",
			n.PreferIPv4StackProperty:       "true",
			n.LoggingTypeProperty:           n.DefaultLoggingType,
			n.MaxNoHeartbeatSecondsProperty: "120",
		}))
		Expect(cfg.Map).To(HaveLen(1))
		Expect(cfg.Map).To(HaveKeyWithValue("ticketRegistry", config.Map{
			Name:             "ticketRegistry",
			MaxIdleSeconds:   28800,
			BackupCount:      1,
			AsyncBackupCount: 0,
			Eviction: config.MapEviction{
				EvictionPolicy: types.EvictionPolicyLRU,
				MaxSizePolicy:  types.MaxSizePolicyUsedHeapPercentage,
				Size:           85,
			},
		}))
		Expect(cfg.PartitionGroup.IsEnabled()).To(BeFalse())
	})

	It("should attach several maps without adding defaults", func() {
		s := defaultSettings()
		maps := map[string]config.Map{}
		for name, idle := range map[string]int64{"tickets": 100, "sessions": 200} {
			m, err := factory.BuildMapPolicy(s, name, idle)
			Expect(err).ToNot(HaveOccurred())
			maps[name] = m
		}

		cfg, err := factory.Build(s, maps)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Map).To(HaveLen(2))
		Expect(cfg.Map["sessions"].MaxIdleSeconds).To(Equal(int32(200)))

		delete(maps, "tickets")
		Expect(cfg.Map).To(HaveKey("tickets"))
	})

	It("should build a network only configuration", func() {
		s := defaultSettings()
		s.PartitionMemberGroupType = "HOST_AWARE"

		cfg, err := factory.BuildNetwork(s)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Map).To(BeEmpty())
		Expect(cfg.PartitionGroup.IsEnabled()).To(BeFalse())
	})

	It("should mark discovery as enabled in the properties", func() {
		s := defaultSettings()
		s.Discovery.Enabled = true
		s.Discovery.JClouds = hazelcastv1alpha1.JCloudsDiscovery{Credential: "c", Identity: "i", Provider: "p", Port: 5701}

		cfg, err := factory.Build(s, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.Properties).To(HaveKeyWithValue(n.DiscoveryEnabledProperty, "true"))
		port, ok := cfg.Network.Join.DiscoveryStrategies.Strategies[0].Properties.Get(n.JCloudsPort)
		Expect(ok).To(BeTrue())
		Expect(port).To(Equal(int32(5701)))
	})

	It("should not return a configuration when no discovery provider is complete", func() {
		s := defaultSettings()
		s.Discovery.Enabled = true

		cfg, err := factory.Build(s, nil)
		Expect(err).To(MatchError(ErrNoDiscoveryProviderConfigured))
		Expect(cfg).To(BeNil())
	})

	DescribeTable("partition grouping",
		func(groupType string, enabled bool, want types.PartitionGroupType) {
			s := defaultSettings()
			s.PartitionMemberGroupType = groupType

			cfg, err := factory.Build(s, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.PartitionGroup.IsEnabled()).To(Equal(enabled))
			Expect(cfg.PartitionGroup.GroupType).To(Equal(want))
		},
		Entry("upper case type", "HOST_AWARE", true, types.PartitionGroupHostAware),
		Entry("lower case type", "host_aware", true, types.PartitionGroupHostAware),
		Entry("zone aware", "Zone_Aware", true, types.PartitionGroupZoneAware),
		Entry("no type", "", false, types.PartitionGroupType("")),
	)

	It("should fail on an unknown partition group type", func() {
		s := defaultSettings()
		s.PartitionMemberGroupType = "bogus"

		cfg, err := factory.Build(s, nil)
		Expect(err).To(MatchError(ErrInvalidPartitionGroupType))
		Expect(cfg).To(BeNil())
	})

	It("should be safe to build concurrently", func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(port int32) {
				defer GinkgoRecover()
				defer wg.Done()
				s := defaultSettings()
				s.Port = port
				cfg, err := factory.Build(s, nil)
				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.Network.Port.Port).To(Equal(port))
			}(int32(5701 + i))
		}
		wg.Wait()
	})
})
