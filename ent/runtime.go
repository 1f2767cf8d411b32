// Code generated by ent, DO NOT EDIT.

package ent

import (
	"NovedadesAPI/ent/article"
	"NovedadesAPI/ent/law"
	"NovedadesAPI/ent/legalreference"
	"NovedadesAPI/ent/report"
	"NovedadesAPI/ent/reportimage"
	"NovedadesAPI/ent/schema"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	articleMixin := schema.Article{}.Mixin()
	articleMixinFields0 := articleMixin[0].Fields()
	_ = articleMixinFields0
	articleFields := schema.Article{}.Fields()
	_ = articleFields
	// articleDescCreatedAt is the schema descriptor for created_at field.
	articleDescCreatedAt := articleMixinFields0[0].Descriptor()
	// article.DefaultCreatedAt holds the default value on creation for the created_at field.
	article.DefaultCreatedAt = articleDescCreatedAt.Default.(func() time.Time)
	// articleDescUpdatedAt is the schema descriptor for updated_at field.
	articleDescUpdatedAt := articleMixinFields0[1].Descriptor()
	// article.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	article.DefaultUpdatedAt = articleDescUpdatedAt.Default.(func() time.Time)
	// article.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	article.UpdateDefaultUpdatedAt = articleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// articleDescNumero is the schema descriptor for numero field.
	articleDescNumero := articleFields[2].Descriptor()
	// article.NumeroValidator is a validator for the "numero" field. It is called by the builders before save.
	article.NumeroValidator = func() func(string) error {
		validators := articleDescNumero.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(numero string) error {
			for _, fn := range fns {
				if err := fn(numero); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// articleDescID is the schema descriptor for id field.
	articleDescID := articleFields[0].Descriptor()
	// article.DefaultID holds the default value on creation for the id field.
	article.DefaultID = articleDescID.Default.(func() uuid.UUID)
	lawMixin := schema.Law{}.Mixin()
	lawMixinFields0 := lawMixin[0].Fields()
	_ = lawMixinFields0
	lawFields := schema.Law{}.Fields()
	_ = lawFields
	// lawDescCreatedAt is the schema descriptor for created_at field.
	lawDescCreatedAt := lawMixinFields0[0].Descriptor()
	// law.DefaultCreatedAt holds the default value on creation for the created_at field.
	law.DefaultCreatedAt = lawDescCreatedAt.Default.(func() time.Time)
	// lawDescUpdatedAt is the schema descriptor for updated_at field.
	lawDescUpdatedAt := lawMixinFields0[1].Descriptor()
	// law.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	law.DefaultUpdatedAt = lawDescUpdatedAt.Default.(func() time.Time)
	// law.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	law.UpdateDefaultUpdatedAt = lawDescUpdatedAt.UpdateDefault.(func() time.Time)
	// lawDescNombre is the schema descriptor for nombre field.
	lawDescNombre := lawFields[1].Descriptor()
	// law.NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	law.NombreValidator = func() func(string) error {
		validators := lawDescNombre.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(nombre string) error {
			for _, fn := range fns {
				if err := fn(nombre); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// lawDescID is the schema descriptor for id field.
	lawDescID := lawFields[0].Descriptor()
	// law.DefaultID holds the default value on creation for the id field.
	law.DefaultID = lawDescID.Default.(func() uuid.UUID)
	legalreferenceMixin := schema.LegalReference{}.Mixin()
	legalreferenceMixinFields0 := legalreferenceMixin[0].Fields()
	_ = legalreferenceMixinFields0
	legalreferenceFields := schema.LegalReference{}.Fields()
	_ = legalreferenceFields
	// legalreferenceDescCreatedAt is the schema descriptor for created_at field.
	legalreferenceDescCreatedAt := legalreferenceMixinFields0[0].Descriptor()
	// legalreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	legalreference.DefaultCreatedAt = legalreferenceDescCreatedAt.Default.(func() time.Time)
	// legalreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	legalreferenceDescUpdatedAt := legalreferenceMixinFields0[1].Descriptor()
	// legalreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	legalreference.DefaultUpdatedAt = legalreferenceDescUpdatedAt.Default.(func() time.Time)
	// legalreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	legalreference.UpdateDefaultUpdatedAt = legalreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// legalreferenceDescID is the schema descriptor for id field.
	legalreferenceDescID := legalreferenceFields[0].Descriptor()
	// legalreference.DefaultID holds the default value on creation for the id field.
	legalreference.DefaultID = legalreferenceDescID.Default.(func() uuid.UUID)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescUsuarioID is the schema descriptor for usuario_id field.
	reportDescUsuarioID := reportFields[1].Descriptor()
	// report.UsuarioIDValidator is a validator for the "usuario_id" field. It is called by the builders before save.
	report.UsuarioIDValidator = reportDescUsuarioID.Validators[0].(func(string) error)
	// reportDescZona is the schema descriptor for zona field.
	reportDescZona := reportFields[2].Descriptor()
	// report.ZonaValidator is a validator for the "zona" field. It is called by the builders before save.
	report.ZonaValidator = func() func(string) error {
		validators := reportDescZona.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(zona string) error {
			for _, fn := range fns {
				if err := fn(zona); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDistrito is the schema descriptor for distrito field.
	reportDescDistrito := reportFields[3].Descriptor()
	// report.DistritoValidator is a validator for the "distrito" field. It is called by the builders before save.
	report.DistritoValidator = func() func(string) error {
		validators := reportDescDistrito.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(distrito string) error {
			for _, fn := range fns {
				if err := fn(distrito); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescCircuito is the schema descriptor for circuito field.
	reportDescCircuito := reportFields[4].Descriptor()
	// report.CircuitoValidator is a validator for the "circuito" field. It is called by the builders before save.
	report.CircuitoValidator = func() func(string) error {
		validators := reportDescCircuito.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(circuito string) error {
			for _, fn := range fns {
				if err := fn(circuito); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDireccion is the schema descriptor for direccion field.
	reportDescDireccion := reportFields[5].Descriptor()
	// report.DireccionValidator is a validator for the "direccion" field. It is called by the builders before save.
	report.DireccionValidator = func() func(string) error {
		validators := reportDescDireccion.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(direccion string) error {
			for _, fn := range fns {
				if err := fn(direccion); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescHorarioJornada is the schema descriptor for horario_jornada field.
	reportDescHorarioJornada := reportFields[6].Descriptor()
	// report.HorarioJornadaValidator is a validator for the "horario_jornada" field. It is called by the builders before save.
	report.HorarioJornadaValidator = func() func(string) error {
		validators := reportDescHorarioJornada.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(horario_jornada string) error {
			for _, fn := range fns {
				if err := fn(horario_jornada); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescHoraReporte is the schema descriptor for hora_reporte field.
	reportDescHoraReporte := reportFields[7].Descriptor()
	// report.HoraReporteValidator is a validator for the "hora_reporte" field. It is called by the builders before save.
	report.HoraReporteValidator = func() func(string) error {
		validators := reportDescHoraReporte.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(hora_reporte string) error {
			for _, fn := range fns {
				if err := fn(hora_reporte); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescFecha is the schema descriptor for fecha field.
	reportDescFecha := reportFields[8].Descriptor()
	// report.FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	report.FechaValidator = func() func(string) error {
		validators := reportDescFecha.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fecha string) error {
			for _, fn := range fns {
				if err := fn(fecha); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescNovedad is the schema descriptor for novedad field.
	reportDescNovedad := reportFields[9].Descriptor()
	// report.NovedadValidator is a validator for the "novedad" field. It is called by the builders before save.
	report.NovedadValidator = reportDescNovedad.Validators[0].(func(string) error)
	// reportDescParteInformante is the schema descriptor for parte_informante field.
	reportDescParteInformante := reportFields[10].Descriptor()
	// report.ParteInformanteValidator is a validator for the "parte_informante" field. It is called by the builders before save.
	report.ParteInformanteValidator = reportDescParteInformante.Validators[0].(func(string) error)
	// reportDescVersion is the schema descriptor for version field.
	reportDescVersion := reportFields[16].Descriptor()
	// report.DefaultVersion holds the default value on creation for the version field.
	report.DefaultVersion = reportDescVersion.Default.(int)
	// report.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	report.VersionValidator = reportDescVersion.Validators[0].(func(int) error)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	reportimageMixin := schema.ReportImage{}.Mixin()
	reportimageMixinFields0 := reportimageMixin[0].Fields()
	_ = reportimageMixinFields0
	reportimageFields := schema.ReportImage{}.Fields()
	_ = reportimageFields
	// reportimageDescCreatedAt is the schema descriptor for created_at field.
	reportimageDescCreatedAt := reportimageMixinFields0[0].Descriptor()
	// reportimage.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportimage.DefaultCreatedAt = reportimageDescCreatedAt.Default.(func() time.Time)
	// reportimageDescUpdatedAt is the schema descriptor for updated_at field.
	reportimageDescUpdatedAt := reportimageMixinFields0[1].Descriptor()
	// reportimage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reportimage.DefaultUpdatedAt = reportimageDescUpdatedAt.Default.(func() time.Time)
	// reportimage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reportimage.UpdateDefaultUpdatedAt = reportimageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportimageDescFileName is the schema descriptor for file_name field.
	reportimageDescFileName := reportimageFields[2].Descriptor()
	// reportimage.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	reportimage.FileNameValidator = func() func(string) error {
		validators := reportimageDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportimageDescOriginalName is the schema descriptor for original_name field.
	reportimageDescOriginalName := reportimageFields[3].Descriptor()
	// reportimage.OriginalNameValidator is a validator for the "original_name" field. It is called by the builders before save.
	reportimage.OriginalNameValidator = func() func(string) error {
		validators := reportimageDescOriginalName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(original_name string) error {
			for _, fn := range fns {
				if err := fn(original_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportimageDescOrden is the schema descriptor for orden field.
	reportimageDescOrden := reportimageFields[4].Descriptor()
	// reportimage.OrdenValidator is a validator for the "orden" field. It is called by the builders before save.
	reportimage.OrdenValidator = reportimageDescOrden.Validators[0].(func(int) error)
	// reportimageDescID is the schema descriptor for id field.
	reportimageDescID := reportimageFields[0].Descriptor()
	// reportimage.DefaultID holds the default value on creation for the id field.
	reportimage.DefaultID = reportimageDescID.Default.(func() uuid.UUID)
}
