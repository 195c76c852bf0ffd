package resolve

import (
	"context"
	"log"
	"net"
	"time"

	"github.com/miekg/dns"

	"connectivity-report/internal/models"
)

// Resolver turns a target string into an IP address. Literal IPs pass
// through untouched. Hostnames go either to a directly queried DNS
// server or to the system resolver.
type Resolver struct {
	server  string // host:port of a DNS server, empty means system resolver
	timeout time.Duration
	lookup  func(ctx context.Context, host string) ([]string, error)
}

// New creates a Resolver. An empty server selects the system resolver.
func New(server string) *Resolver {
	return &Resolver{
		server:  server,
		timeout: 10 * time.Second,
		lookup:  net.DefaultResolver.LookupHost,
	}
}

// Resolve resolves a target to an address. A string that parses as an
// IP literal is returned unchanged; anything else is treated as a
// hostname. Resolution failure yields an unresolved result, never an
// error.
func (r *Resolver) Resolve(ctx context.Context, target string) models.DNSResult {
	if ip := net.ParseIP(target); ip != nil {
		return models.DNSResult{Resolved: true, Address: target}
	}

	var addr string
	var err error
	if r.server != "" {
		addr, err = r.queryServer(ctx, target)
	} else {
		addr, err = r.lookupSystem(ctx, target)
	}

	if err != nil {
		log.Printf("Failed to resolve %s: %v", target, err)
		return models.DNSResult{Resolved: false}
	}

	return models.DNSResult{Resolved: true, Address: addr}
}

// lookupSystem asks the system resolver and returns the first address.
func (r *Resolver) lookupSystem(ctx context.Context, host string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.lookup(ctx, host)
	if err != nil {
		return "", err
	}
	return addrs[0], nil
}

// queryServer sends an A query straight to the configured server.
func (r *Resolver) queryServer(ctx context.Context, host string) (string, error) {
	client := &dns.Client{Timeout: r.timeout}

	msg := dns.Msg{}
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)

	response, _, err := client.ExchangeContext(ctx, &msg, r.server)
	if err != nil {
		return "", err
	}

	if response.Rcode != dns.RcodeSuccess {
		return "", &net.DNSError{
			Err:  dns.RcodeToString[response.Rcode],
			Name: host,
		}
	}

	for _, answer := range response.Answer {
		if a, ok := answer.(*dns.A); ok {
			return a.A.String(), nil
		}
	}

	return "", &net.DNSError{Err: "no A records", Name: host}
}
