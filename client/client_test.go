// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client_test

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/ava-labs/inheritancevm/chain"
	"github.com/ava-labs/inheritancevm/client"
	"github.com/ava-labs/inheritancevm/vm"
)

const requestTimeout = 30 * time.Second

func TestClient(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "inheritancevm client test suites")
}

var (
	ownerPriv *ecdsa.PrivateKey
	owner     common.Address

	heirPriv *ecdsa.PrivateKey
	heir     common.Address

	genesis *chain.Genesis

	v          *vm.VM
	httpServer *httptest.Server
	cli        client.Client
)

var _ = ginkgo.BeforeSuite(func() {
	var err error
	ownerPriv, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	owner = crypto.PubkeyToAddress(ownerPriv.PublicKey)

	heirPriv, err = crypto.GenerateKey()
	gomega.Ω(err).Should(gomega.BeNil())
	heir = crypto.PubkeyToAddress(heirPriv.PublicKey)

	genesis = chain.DefaultGenesis()
	genesis.Magic = 5
	genesisBytes, err := json.Marshal(genesis)
	gomega.Ω(err).Should(gomega.BeNil())

	// Build every 10ms
	v = &vm.VM{}
	err = v.Initialize(memdb.New(), genesisBytes, []byte(`{"buildInterval":10000000}`))
	gomega.Ω(err).Should(gomega.BeNil())

	hd, err := v.CreateHandlers()
	gomega.Ω(err).Should(gomega.BeNil())

	httpServer = httptest.NewServer(hd[vm.PublicEndpoint])
	cli = client.New(httpServer.URL, requestTimeout)
})

var _ = ginkgo.AfterSuite(func() {
	httpServer.Close()
	err := v.Shutdown()
	gomega.Ω(err).Should(gomega.BeNil())
})

var _ = ginkgo.Describe("[Ping]", func() {
	ginkgo.It("can ping", func() {
		ok, err := cli.Ping()
		gomega.Ω(ok).Should(gomega.BeTrue())
		gomega.Ω(err).Should(gomega.BeNil())
	})
})

var _ = ginkgo.Describe("[Genesis]", func() {
	ginkgo.It("serves the genesis it was started with", func() {
		g, err := cli.Genesis()
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(g).Should(gomega.Equal(genesis))
	})
})

var _ = ginkgo.Describe("[Inheritance]", ginkgo.Ordered, func() {
	var deadline uint64

	ginkgo.It("ensure no activity yet", func() {
		activity, err := cli.RecentActivity()
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(activity).To(gomega.BeEmpty())
	})

	ginkgo.It("reads an unconfigured owner as the empty record", func() {
		i, exists, err := cli.Inheritance(owner)
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(exists).To(gomega.BeFalse())
		gomega.Ω(i.Owner).To(gomega.Equal(owner))
		gomega.Ω(i.Heir).To(gomega.Equal(owner))

		total, err := cli.TotalInheritances()
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(total).To(gomega.BeZero())
	})

	ginkgo.It("rejects a setup signed by someone other than the owner", func() {
		utx := &chain.SetupTx{
			BaseTx:   &chain.BaseTx{},
			Owner:    owner,
			Heir:     heir,
			Deadline: uint64(time.Now().Add(time.Hour).Unix()),
		}
		_, err := client.SignIssueRawTx(context.Background(), cli, utx, heirPriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).To(gomega.ContainSubstring(chain.ErrUnauthorized.Error()))
	})

	ginkgo.It("sets up an inheritance", func() {
		deadline = uint64(time.Now().Add(5 * time.Second).Unix())
		utx := &chain.SetupTx{
			BaseTx:      &chain.BaseTx{},
			Owner:       owner,
			Heir:        heir,
			AssetAmount: chain.AmountFromInt64(1_000_000),
			Deadline:    deadline,
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		txID, err := client.SignIssueRawTx(ctx, cli, utx, ownerPriv, client.WithPollTx(), client.WithInfo(owner))
		cancel()
		gomega.Ω(err).Should(gomega.BeNil())

		r, err := cli.TxStatus(txID)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(r.Accepted).To(gomega.BeTrue())

		i, exists, err := cli.Inheritance(owner)
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(exists).To(gomega.BeTrue())
		gomega.Ω(i.Heir).To(gomega.Equal(heir))
		gomega.Ω(i.AssetAmount.String()).To(gomega.Equal("1000000"))
		gomega.Ω(i.Deadline).To(gomega.Equal(deadline))
		gomega.Ω(i.IsClaimed).To(gomega.BeFalse())

		total, err := cli.TotalInheritances()
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(total).To(gomega.Equal(uint64(1)))
	})

	ginkgo.It("rejects a claim before the deadline", func() {
		utx := &chain.ClaimTx{BaseTx: &chain.BaseTx{}, Owner: owner, Heir: heir}
		_, err := client.SignIssueRawTx(context.Background(), cli, utx, heirPriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).To(gomega.ContainSubstring(chain.ErrDeadlineNotReached.Error()))
	})

	ginkgo.It("lets the heir claim once the deadline passes", func() {
		time.Sleep(time.Until(time.Unix(int64(deadline)+1, 0)))

		utx := &chain.ClaimTx{BaseTx: &chain.BaseTx{}, Owner: owner, Heir: heir}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		_, err := client.SignIssueRawTx(ctx, cli, utx, heirPriv, client.WithPollTx())
		cancel()
		gomega.Ω(err).Should(gomega.BeNil())

		i, _, err := cli.Inheritance(owner)
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(i.IsClaimed).To(gomega.BeTrue())
	})

	ginkgo.It("rejects a second claim", func() {
		utx := &chain.ClaimTx{BaseTx: &chain.BaseTx{}, Owner: owner, Heir: heir}
		_, err := client.SignIssueRawTx(context.Background(), cli, utx, heirPriv)
		gomega.Ω(err).ShouldNot(gomega.BeNil())
		gomega.Ω(err.Error()).To(gomega.ContainSubstring(chain.ErrAlreadyClaimed.Error()))
	})

	ginkgo.It("reports activity newest first", func() {
		activity, err := cli.RecentActivity()
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(activity).To(gomega.HaveLen(2))
		gomega.Ω(activity[0].Typ).To(gomega.Equal(chain.Claim))
		gomega.Ω(activity[0].Sender).To(gomega.Equal(heir.Hex()))
		gomega.Ω(activity[1].Typ).To(gomega.Equal(chain.Setup))
		gomega.Ω(activity[1].Amount).To(gomega.Equal("1000000"))
		gomega.Ω(client.PPActivity(activity)).To(gomega.BeNil())
	})

	ginkgo.It("keeps the instance live", func() {
		info, err := cli.Instance()
		gomega.Ω(err).To(gomega.BeNil())
		gomega.Ω(info.Archived).To(gomega.BeFalse())
		gomega.Ω(info.LiveUntil).To(gomega.BeNumerically(">", info.Sequence))
	})
})
