package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/directory-web/internal/model"
	"github.com/jwalitptl/directory-web/internal/repository/mocks"
)

func fixedToken() string { return "a1b2c" }

const sampleCSV = "\ufeffNombre,Dirección,Ciudad,Telefono,Especialidades\n" +
	"José Pérez Dr.,Av. 9 de Octubre 100,Guayaquil,04 123 4567,\"['Cardiología', 'Medicina Interna']\"\n" +
	",Sin nombre,Quito,,\n" +
	"\n" +
	"  Clínica O'Brien ,  Calle 5  ,,,Dermatología\n" +
	"Centro Dental,,Durán,,[]\n"

func TestBaseSlug(t *testing.T) {
	assert.Equal(t, "jose-perez-dr", BaseSlug("José Pérez Dr."))
	assert.Equal(t, "clinica-nino-jesus", BaseSlug("  Clínica Niño Jesús!! "))
	assert.Equal(t, "", BaseSlug("---"))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "jose-perez-dr-a1b2c", Slug("José Pérez Dr.", fixedToken))
	assert.Regexp(t, regexp.MustCompile(`^jose-perez-dr-[0-9a-z]{5}$`), Slug("José Pérez Dr.", RandomToken))
}

func TestParseSpecialty(t *testing.T) {
	assert.Equal(t, "Dentista", *ParseSpecialty(`['Dentista']`))
	assert.Equal(t, "Cardiología", *ParseSpecialty(`["Cardiología", "Pediatría"]`))
	assert.Equal(t, "Dermatología", *ParseSpecialty("Dermatología"))
	assert.Nil(t, ParseSpecialty(""))
	assert.Nil(t, ParseSpecialty("[]"))
	assert.Nil(t, ParseSpecialty(`"solo texto"`))
}

func TestReadTable_Records(t *testing.T) {
	table, err := ReadTable(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{"Nombre", "Dirección", "Ciudad", "Telefono", "Especialidades"}, table.Headers)

	records := table.Records()
	require.Len(t, records, 3)

	assert.Equal(t, "José Pérez Dr.", records[0].Name)
	assert.Equal(t, "Av. 9 de Octubre 100", records[0].Address)
	assert.Equal(t, "Guayaquil", records[0].City)
	assert.Equal(t, "Cardiología", *records[0].Specialty)

	assert.Equal(t, "Clínica O'Brien", records[1].Name)
	assert.Equal(t, "Calle 5", records[1].Address)
	assert.Equal(t, DefaultCity, records[1].City)
	assert.Equal(t, "Dermatología", *records[1].Specialty)

	assert.Nil(t, records[2].Specialty)
	assert.Equal(t, []string{"José Pérez Dr.", "Clínica O'Brien", "Centro Dental"}, table.Names())
}

func TestReadTable_MisencodedAddressHeader(t *testing.T) {
	table, err := ReadTable(strings.NewReader("Nombre,DirecciÃ³n\nClínica Sol,Av. Quito\n"))
	require.NoError(t, err)
	assert.Equal(t, "Av. Quito", table.Records()[0].Address)
}

func TestImportClinics(t *testing.T) {
	clinics := new(mocks.ClinicRepository)
	listings := new(mocks.ListingRepository)
	ids := []uuid.UUID{}
	clinics.On("Create", mock.Anything, mock.AnythingOfType("*model.Clinic")).Run(func(args mock.Arguments) {
		c := args.Get(1).(*model.Clinic)
		c.ID = uuid.New()
		ids = append(ids, c.ID)
	}).Return(nil)
	listings.On("Create", mock.Anything, mock.AnythingOfType("*model.Listing")).Return(nil)

	var progress bytes.Buffer
	im := New(clinics, listings, &progress)
	im.token = fixedToken

	records := make([]Record, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, Record{Name: fmt.Sprintf("Consultorio %d", i), City: DefaultCity})
	}
	s, err := im.ImportClinics(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, Summary{Success: 12}, s)
	assert.Equal(t, ".", progress.String())

	first := clinics.Calls[0].Arguments.Get(1).(*model.Clinic)
	assert.Equal(t, model.CategoryGeneralMedicine, first.Category)
	assert.Equal(t, "consultorio-0-a1b2c", *first.Slug)

	listing := listings.Calls[0].Arguments.Get(1).(*model.Listing)
	assert.Equal(t, "consultorio-0-a1b2c", listing.Slug)
	assert.False(t, listing.IsVerified)
	require.NotNil(t, listing.ClinicID)
	assert.Equal(t, ids[0], *listing.ClinicID)
}

func TestImportClinics_StopsAtFirstError(t *testing.T) {
	clinics := new(mocks.ClinicRepository)
	listings := new(mocks.ListingRepository)
	clinics.On("Create", mock.Anything, mock.Anything).Return(nil)
	listings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	listings.On("Create", mock.Anything, mock.Anything).Return(errors.New("duplicate key"))

	im := New(clinics, listings, &bytes.Buffer{})
	s, err := im.ImportClinics(context.Background(), []Record{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"B"`)
	assert.Equal(t, 1, s.Success)
	clinics.AssertNumberOfCalls(t, "Create", 2)
}

func TestImportListings_ContinuesOnError(t *testing.T) {
	listings := new(mocks.ListingRepository)
	listings.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Listing) bool { return l.Name == "B" })).Return(errors.New("boom"))
	listings.On("Create", mock.Anything, mock.Anything).Return(nil)

	im := New(new(mocks.ClinicRepository), listings, &bytes.Buffer{})
	s := im.ImportListings(context.Background(), []Record{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	assert.Equal(t, Summary{Success: 2, Errors: 1}, s)

	for _, call := range listings.Calls {
		assert.Nil(t, call.Arguments.Get(1).(*model.Listing).ClinicID)
	}
}

func TestRollback_Chunks(t *testing.T) {
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	since := now.Add(-24 * time.Hour)

	names := make([]string, 0, 120)
	for i := 0; i < 120; i++ {
		names = append(names, fmt.Sprintf("n%d", i))
	}

	clinics := new(mocks.ClinicRepository)
	listings := new(mocks.ListingRepository)
	listings.On("DeleteImported", mock.Anything, mock.Anything, since).Return(int64(3), nil)
	clinics.On("DeleteImported", mock.Anything, mock.Anything, since).Return(int64(2), nil).Twice()
	clinics.On("DeleteImported", mock.Anything, mock.Anything, since).Return(int64(0), errors.New("fk violation"))

	var progress bytes.Buffer
	im := New(clinics, listings, &progress)
	im.now = func() time.Time { return now }

	s := im.Rollback(context.Background(), names)
	assert.Equal(t, RollbackSummary{Names: 120, DeletedListings: 9, DeletedClinics: 4, FailedStatements: 1}, s)
	assert.Equal(t, "...", progress.String())

	require.Len(t, listings.Calls, 3)
	assert.Len(t, listings.Calls[0].Arguments.Get(1).([]string), 50)
	assert.Len(t, listings.Calls[2].Arguments.Get(1).([]string), 20)
}

func TestWriteSQL(t *testing.T) {
	specialty := "Cardiología"
	var out bytes.Buffer
	err := WriteSQL(&out, []Record{
		{Name: "Clínica O'Brien", Address: "Calle 5", City: "Quito", Specialty: &specialty},
		{Name: "Dr. Ana", City: DefaultCity},
	}, fixedToken)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "-- Migration: Import Ecuador Listings (Unverified)", lines[0])
	assert.Equal(t,
		"INSERT INTO public.directory_listings (nombre, slug, direccion, telefono, especialidad, ciudad, is_verified, consultorio_id) VALUES ('Clínica O''Brien', 'clinica-o-brien-a1b2c', 'Calle 5', NULL, 'Cardiología', 'Quito', false, NULL);",
		lines[len(lines)-2])
	assert.Equal(t,
		"INSERT INTO public.directory_listings (nombre, slug, direccion, telefono, especialidad, ciudad, is_verified, consultorio_id) VALUES ('Dr. Ana', 'dr-ana-a1b2c', NULL, NULL, NULL, 'General', false, NULL);",
		lines[len(lines)-1])
}

func TestEscapeSQL(t *testing.T) {
	assert.Equal(t, "NULL", EscapeSQL(""))
	assert.Equal(t, "'it''s'", EscapeSQL("it's"))
}

func TestCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Check(&out, []byte(sampleCSV), 1))

	text := out.String()
	assert.Contains(t, text, `Headers (UTF-8): ["Nombre","Dirección","Ciudad","Telefono","Especialidades"]`)
	assert.Contains(t, text, `"DirecciÃ³n"`)
	assert.Contains(t, text, `Row 1: ["José Pérez Dr."`)
	assert.NotContains(t, text, "Row 2:")
}
