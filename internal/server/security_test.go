package server

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dtroode/cookbook-server/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCertificate(t *testing.T, certFile, keyFile string) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			Organization:  []string{"Test"},
			Country:       []string{"US"},
			Province:      []string{""},
			Locality:      []string{"San Francisco"},
			StreetAddress: []string{""},
			PostalCode:    []string{""},
		},
		NotBefore:   time.Now(),
		NotAfter:    time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses: []net.IP{net.IPv4(127, 0, 0, 1)},
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &privateKey.PublicKey, privateKey)
	require.NoError(t, err)

	certOut, err := os.Create(certFile)
	require.NoError(t, err)
	defer certOut.Close()

	err = pem.Encode(certOut, &pem.Block{Type: "CERTIFICATE", Bytes: certDER})
	require.NoError(t, err)

	keyOut, err := os.Create(keyFile)
	require.NoError(t, err)
	defer keyOut.Close()

	privKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	require.NoError(t, err)

	err = pem.Encode(keyOut, &pem.Block{Type: "PRIVATE KEY", Bytes: privKeyBytes})
	require.NoError(t, err)
}

func TestNewTLSListener(t *testing.T) {
	listener := NewTLSListener("server.crt", "server.key")
	require.NotNil(t, listener)
	assert.Equal(t, "server.crt", listener.certFileName)
	assert.Equal(t, "server.key", listener.privateKeyFileName)
}

func newTLSListener(t *testing.T) net.Listener {
	t.Helper()
	tempDir := t.TempDir()
	certFile := filepath.Join(tempDir, "test.crt")
	keyFile := filepath.Join(tempDir, "test.key")
	createTestCertificate(t, certFile, keyFile)

	ln, err := NewTLSListener(certFile, keyFile).Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return ln
}

func serveHandshakes(ln net.Listener) {
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.(*tls.Conn).Handshake()
			_ = conn.Close()
		}
	}()
}

func TestTLSListener_Listen_Handshake(t *testing.T) {
	ln := newTLSListener(t)
	serveHandshakes(ln)

	conn, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{InsecureSkipVerify: true})
	require.NoError(t, err)
	defer conn.Close()

	assert.GreaterOrEqual(t, conn.ConnectionState().Version, uint16(tls.VersionTLS12))
}

func TestTLSListener_Listen_RejectsLegacyVersions(t *testing.T) {
	ln := newTLSListener(t)
	serveHandshakes(ln)

	_, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS10,
		MaxVersion:         tls.VersionTLS11,
	})
	require.Error(t, err)
}

func TestTLSListener_Listen_InvalidCertificate(t *testing.T) {
	listener := NewTLSListener("nonexistent.crt", "nonexistent.key")

	_, err := listener.Listen("tcp", "127.0.0.1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TLS certificate")
}

func TestTLSListener_Listen_InvalidAddress(t *testing.T) {
	tempDir := t.TempDir()
	certFile := filepath.Join(tempDir, "test.crt")
	keyFile := filepath.Join(tempDir, "test.key")
	createTestCertificate(t, certFile, keyFile)

	_, err := NewTLSListener(certFile, keyFile).Listen("tcp", "invalid-address")
	require.Error(t, err)
}

func TestPlainListener_Listen(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		addr     string
		wantErr  bool
	}{
		{name: "tcp", protocol: "tcp", addr: "127.0.0.1:0"},
		{name: "tcp4", protocol: "tcp4", addr: "127.0.0.1:0"},
		{name: "invalid address", protocol: "tcp", addr: "invalid-address", wantErr: true},
		{name: "unknown protocol", protocol: "bogus", addr: "127.0.0.1:0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln, err := NewPlainListener().Listen(tt.protocol, tt.addr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer ln.Close()

			_, ok := ln.(*net.TCPListener)
			assert.True(t, ok)
		})
	}
}

func TestNewSecurityLayer(t *testing.T) {
	var layer model.SecurityLayer

	layer = NewSecurityLayer(true, "cert.pem", "key.pem")
	assert.IsType(t, &TLSListener{}, layer)

	layer = NewSecurityLayer(false, "cert.pem", "key.pem")
	assert.IsType(t, &PlainListener{}, layer)
}
