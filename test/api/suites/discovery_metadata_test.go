package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/aimall-cloud/commerce/pkg/constants"
	"github.com/aimall-cloud/commerce/test/api"
)

var _ = Describe("Discovery and Metadata", func() {
	Context("When checking service health", func() {
		It("should report the service as up", func() {
			health, err := client.HealthCheck(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(health.Status).To(Equal("up"))
		})

		It("should return a body matching the Health schema", func() {
			resp, err := client.Do(ctx, http.MethodGet, "/api/v1/health", nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp).To(api.HaveStatus(http.StatusOK))
			Expect(api.ValidateSchema(resp.Body, "Health")).To(Succeed())
		})
	})

	Context("When querying the service version", func() {
		It("should identify the application", func() {
			version, err := client.GetVersion(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(version.Application).To(Equal(constants.Application))
			GinkgoWriter.Printf("Running against %s %s (%s)\n", version.Application, version.Version, version.Revision)
		})
	})

	Context("When fetching the OpenAPI document", func() {
		It("should serve a loadable document describing the API", func() {
			document, err := client.GetOpenAPISpec(ctx)
			Expect(err).NotTo(HaveOccurred())

			loader := openapi3.NewLoader()

			parsed, err := loader.LoadFromData(document)
			Expect(err).NotTo(HaveOccurred())

			Expect(parsed.Paths.Find("/api/v1/products")).NotTo(BeNil())
			Expect(parsed.Paths.Find("/api/v1/orders")).NotTo(BeNil())
			Expect(parsed.Components.Schemas).To(HaveKey("OrderRead"))
			Expect(parsed.Components.Schemas).To(HaveKey("Error"))
		})
	})
})
