// internal/phy/arp.go
package phy

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// ARPProbeConfig configures active link probing against the gateway.
type ARPProbeConfig struct {
	Interface string
	Gateway   string
	Timeout   time.Duration
}

// ARPProbe checks link liveness actively: it broadcasts an ARP request
// for the gateway and treats a reply within the timeout as link
// present. Useful where the NIC reports carrier but the segment behind
// it is dead.
type ARPProbe struct {
	handle  *pcap.Handle
	hostMAC net.HardwareAddr
	srcIP   net.IP
	gateway net.IP
	timeout time.Duration
}

// NewARPProbe resolves interface addressing and opens a capture handle
// filtered to ARP traffic.
func NewARPProbe(cfg ARPProbeConfig) (*ARPProbe, error) {
	gw := net.ParseIP(cfg.Gateway)
	if gw == nil || gw.To4() == nil {
		return nil, fmt.Errorf("phy: invalid gateway address %q", cfg.Gateway)
	}

	iface, err := net.InterfaceByName(cfg.Interface)
	if err != nil {
		return nil, fmt.Errorf("phy: interface %s: %w", cfg.Interface, err)
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return nil, fmt.Errorf("phy: interface addresses: %w", err)
	}
	var srcIP net.IP
	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && ipnet.IP.To4() != nil {
			srcIP = ipnet.IP.To4()
			break
		}
	}
	if srcIP == nil {
		return nil, errors.New("phy: no IPv4 address on probe interface")
	}

	// Short read timeout so the reply wait can observe its deadline.
	handle, err := pcap.OpenLive(cfg.Interface, 128, false, 50*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("phy: open capture: %w", err)
	}
	if err := handle.SetBPFFilter("arp"); err != nil {
		handle.Close()
		return nil, fmt.Errorf("phy: set filter: %w", err)
	}

	return &ARPProbe{
		handle:  handle,
		hostMAC: iface.HardwareAddr,
		srcIP:   srcIP,
		gateway: gw.To4(),
		timeout: cfg.Timeout,
	}, nil
}

// Close releases the capture handle.
func (p *ARPProbe) Close() {
	p.handle.Close()
}

// PollLink sends one ARP request and waits up to the configured timeout
// for a matching reply. Send failures count as link absent.
func (p *ARPProbe) PollLink() bool {
	if err := p.sendRequest(); err != nil {
		return false
	}

	deadline := time.Now().Add(p.timeout)
	for time.Now().Before(deadline) {
		data, _, err := p.handle.ReadPacketData()
		if err != nil {
			if err == pcap.NextErrorTimeoutExpired {
				continue
			}
			return false
		}
		pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
		arpLayer := pkt.Layer(layers.LayerTypeARP)
		if arpLayer == nil {
			continue
		}
		reply, ok := arpLayer.(*layers.ARP)
		if !ok {
			continue
		}
		if reply.Operation == layers.ARPReply &&
			net.IP(reply.SourceProtAddress).Equal(p.gateway) {
			return true
		}
	}
	return false
}

func (p *ARPProbe) sendRequest() error {
	eth := layers.Ethernet{
		SrcMAC:       p.hostMAC,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte(p.hostMAC),
		SourceProtAddress: []byte(p.srcIP),
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte(p.gateway),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, &eth, &arp); err != nil {
		return err
	}
	return p.handle.WritePacketData(buf.Bytes())
}
