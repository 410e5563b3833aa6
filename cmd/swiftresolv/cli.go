package main

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/SyNdicateFoundation/swiftresolv"
	"github.com/SyNdicateFoundation/swiftresolv/gateway"
	"github.com/SyNdicateFoundation/swiftresolv/swiftutils"
	"github.com/SyNdicateFoundation/swiftresolv/swiftypes"
	"github.com/miekg/dns"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func runCLI() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "swiftresolv",
		Short: "Inspect the host's network adapter DNS configuration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return swiftresolv.Load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			swiftresolv.Unload()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	var asJSON bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List adapters and their DNS configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapters, err := swiftresolv.Adapters()
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(adapters)
			}

			printAdapters(adapters)
			return nil
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")

	var probeName string
	var probeTimeout time.Duration
	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Send one query to every configured DNS server",
		RunE: func(cmd *cobra.Command, args []string) error {
			adapters, err := swiftresolv.Adapters()
			if err != nil {
				return err
			}

			probeAdapters(adapters, probeName, probeTimeout)
			return nil
		},
	}
	probeCmd.Flags().StringVar(&probeName, "name", "example.com.", "name to resolve")
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", 3*time.Second, "per-server query timeout")

	flushCmd := &cobra.Command{
		Use:   "flush",
		Short: "Flush the OS DNS cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := swiftutils.FlushDNSCache(); err != nil {
				return err
			}

			fmt.Println("DNS cache flushed")
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, probeCmd, flushCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printAdapters(adapters []swiftypes.Adapter) {
	if len(adapters) == 0 {
		fmt.Println("No adapters reported.")
		return
	}

	defaultName := defaultRouteAdapter()

	for _, a := range adapters {
		marker := " "
		if a.Name == defaultName {
			marker = "*"
		}

		fmt.Printf("%s %s (index %d)\n", marker, a.Name, a.Index)
		if len(a.DNSServers) > 0 {
			fmt.Printf("    DNS:    %s\n", strings.Join(swiftutils.FormatIPs(a.DNSServers), " "))
		}
		if len(a.SearchDomains) > 0 {
			fmt.Printf("    Search: %s\n", strings.Join(a.SearchDomains, " "))
		}
	}

	if defaultName != "" {
		fmt.Println("\n* adapter on the default route")
	}
}

func printJSON(adapters []swiftypes.Adapter) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(adapters)
}

func probeAdapters(adapters []swiftypes.Adapter, name string, timeout time.Duration) {
	client := &dns.Client{Timeout: timeout}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)

	for _, a := range adapters {
		if len(a.DNSServers) == 0 {
			log.Debugf("adapter %s has no DNS servers, skipping", a.Name)
			continue
		}

		fmt.Printf("%s:\n", a.Name)
		for _, server := range a.DNSServers {
			addr := net.JoinHostPort(server.String(), "53")

			reply, rtt, err := client.Exchange(msg, addr)
			if err != nil {
				fmt.Printf("    %-40s unreachable (%v)\n", addr, err)
				continue
			}

			fmt.Printf("    %-40s %s, %d answers, %v\n",
				addr, dns.RcodeToString[reply.Rcode], len(reply.Answer), rtt.Round(time.Millisecond))
		}
	}
}

// defaultRouteAdapter maps the IPv4 default gateway back to the interface
// whose subnet contains it. Best-effort: returns "" when nothing matches.
func defaultRouteAdapter() string {
	gw, err := gateway.DiscoverGatewayIPv4()
	if err != nil {
		log.Debugf("gateway discovery failed: %v", err)
		return ""
	}

	ifaces, err := net.Interfaces()
	if err != nil {
		return ""
	}

	for _, ifi := range ifaces {
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && ipnet.Contains(gw) {
				return ifi.Name
			}
		}
	}

	return ""
}
