package storageutils_test

import (
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/recruit/pkg/storage/inmemory"
	"github.com/papercomputeco/recruit/pkg/storage/jsonfile"
	"github.com/papercomputeco/recruit/pkg/storage/sqlite"
	storageutils "github.com/papercomputeco/recruit/pkg/storage/utils"
)

var _ = Describe("NewStorageDriver", func() {
	var (
		ctx context.Context
		dir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir = GinkgoT().TempDir()
	})

	It("defaults to the json driver", func() {
		path := filepath.Join(dir, "persons.json")
		d, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{Path: path})
		Expect(err).NotTo(HaveOccurred())
		defer d.Close()

		Expect(d).To(BeAssignableToTypeOf(&jsonfile.Driver{}))
		Expect(d.(*jsonfile.Driver).Path()).To(Equal(path))
	})

	It("creates a sqlite driver", func() {
		d, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{
			Driver: storageutils.DriverSQLite,
			Path:   filepath.Join(dir, "persons.db"),
		})
		Expect(err).NotTo(HaveOccurred())
		defer d.Close()

		Expect(d).To(BeAssignableToTypeOf(&sqlite.SQLiteDriver{}))
	})

	It("creates a memory driver", func() {
		d, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{
			Driver: storageutils.DriverMemory,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(BeAssignableToTypeOf(&inmemory.Driver{}))
	})

	It("requires a DSN for postgres", func() {
		_, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{
			Driver: storageutils.DriverPostgres,
		})
		Expect(err).To(MatchError(ContainSubstring("DSN")))
	})

	It("rejects unknown drivers", func() {
		_, err := storageutils.NewStorageDriver(ctx, &storageutils.NewStorageDriverOpts{
			Driver: "redis",
		})
		Expect(err).To(MatchError(ContainSubstring("unsupported storage driver: redis")))
	})
})
