package db

import (
	"fmt"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgproto3"
	"github.com/stretchr/testify/require"
)

// slowBackend is a minimal postgres server answering simple queries after a delay.
type slowBackend struct {
	delay   time.Duration
	queries atomic.Int32
}

// start listens on a random local port and returns a DSN pointing to it.
func (b *slowBackend) start(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			go b.serve(c)
		}
	}()

	return fmt.Sprintf("postgres://u:p@%s/d?sslmode=disable", ln.Addr().String())
}

func (b *slowBackend) serve(c net.Conn) {
	defer c.Close()
	be := pgproto3.NewBackend(c, c)

	for {
		msg, err := be.ReceiveStartupMessage()
		if err != nil {
			return
		}
		if _, ok := msg.(*pgproto3.StartupMessage); ok {
			break
		}
		// ssl / gss requests are refused
		if _, err := c.Write([]byte{'N'}); err != nil {
			return
		}
	}

	be.Send(&pgproto3.AuthenticationOk{})
	be.Send(&pgproto3.ParameterStatus{Name: "client_encoding", Value: "UTF8"})
	be.Send(&pgproto3.ParameterStatus{Name: "standard_conforming_strings", Value: "on"})
	be.Send(&pgproto3.ParameterStatus{Name: "server_version", Value: "16.0"})
	be.Send(&pgproto3.ReadyForQuery{TxStatus: 'I'})
	if err := be.Flush(); err != nil {
		return
	}

	for {
		msg, err := be.Receive()
		if err != nil {
			return
		}
		q, ok := msg.(*pgproto3.Query)
		if !ok {
			return
		}
		b.answer(be, q.String)
		if err := be.Flush(); err != nil {
			return
		}
	}
}

func (b *slowBackend) answer(be *pgproto3.Backend, sql string) {
	b.queries.Add(1)
	time.Sleep(b.delay)

	if strings.HasPrefix(strings.ToUpper(sql), "UPDATE") {
		be.Send(&pgproto3.CommandComplete{CommandTag: []byte("UPDATE 1")})
	} else {
		be.Send(&pgproto3.RowDescription{Fields: []pgproto3.FieldDescription{{
			Name:         []byte("n"),
			DataTypeOID:  23,
			DataTypeSize: 4,
			TypeModifier: -1,
		}}})
		be.Send(&pgproto3.DataRow{Values: [][]byte{[]byte("1")}})
		be.Send(&pgproto3.CommandComplete{CommandTag: []byte("SELECT 1")})
	}
	be.Send(&pgproto3.ReadyForQuery{TxStatus: 'I'})
}
