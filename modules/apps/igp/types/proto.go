package types

import (
	"bytes"
	"compress/gzip"

	"github.com/gogo/protobuf/proto"
	descpb "github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
	yaml "gopkg.in/yaml.v2"
)

// ProtoPackage is the protobuf package the igp messages are registered under.
const ProtoPackage = "igp.v1"

const protoFileName = "igp/v1/tx.proto"

// message indices within the igp file descriptor
const (
	remoteGasDataIndex = iota
	gasOracleConfigIndex
	gasOverheadConfigIndex
	msgInitPaymasterIndex
	msgInitOverheadPaymasterIndex
	msgPayForGasIndex
	msgClaimIndex
	msgSetGasOracleConfigsIndex
	msgSetDestinationGasOverheadsIndex
	msgTransferPaymasterOwnershipIndex
	msgTransferOverheadPaymasterOwnershipIndex
	msgSetBeneficiaryIndex
)

// fileDescriptorIGP is the gzipped FileDescriptorProto of the igp messages. The tx
// decoder walks it to reject unknown fields.
var fileDescriptorIGP = mustGzipFileDescriptor(newFileDescriptorIGP())

func init() {
	proto.RegisterFile(protoFileName, fileDescriptorIGP)

	proto.RegisterType((*RemoteGasData)(nil), ProtoPackage+".RemoteGasData")
	proto.RegisterType((*GasOracleConfig)(nil), ProtoPackage+".GasOracleConfig")
	proto.RegisterType((*GasOverheadConfig)(nil), ProtoPackage+".GasOverheadConfig")
	proto.RegisterType((*MsgInitPaymaster)(nil), ProtoPackage+".MsgInitPaymaster")
	proto.RegisterType((*MsgInitOverheadPaymaster)(nil), ProtoPackage+".MsgInitOverheadPaymaster")
	proto.RegisterType((*MsgPayForGas)(nil), ProtoPackage+".MsgPayForGas")
	proto.RegisterType((*MsgClaim)(nil), ProtoPackage+".MsgClaim")
	proto.RegisterType((*MsgSetGasOracleConfigs)(nil), ProtoPackage+".MsgSetGasOracleConfigs")
	proto.RegisterType((*MsgSetDestinationGasOverheads)(nil), ProtoPackage+".MsgSetDestinationGasOverheads")
	proto.RegisterType((*MsgTransferPaymasterOwnership)(nil), ProtoPackage+".MsgTransferPaymasterOwnership")
	proto.RegisterType((*MsgTransferOverheadPaymasterOwnership)(nil), ProtoPackage+".MsgTransferOverheadPaymasterOwnership")
	proto.RegisterType((*MsgSetBeneficiary)(nil), ProtoPackage+".MsgSetBeneficiary")
}

// newFileDescriptorIGP describes the wire layout of the igp messages. Field numbers
// and types must agree with the protobuf struct tags of the Go types.
func newFileDescriptorIGP() *descpb.FileDescriptorProto {
	return &descpb.FileDescriptorProto{
		Name:    proto.String(protoFileName),
		Package: proto.String(ProtoPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descpb.DescriptorProto{
			remoteGasDataIndex: message("RemoteGasData",
				stringField("token_exchange_rate", 1),
				stringField("gas_price", 2),
			),
			gasOracleConfigIndex: message("GasOracleConfig",
				scalarField("domain", 1, descpb.FieldDescriptorProto_TYPE_UINT32),
				messageField("gas_oracle", 2, "RemoteGasData", false),
			),
			gasOverheadConfigIndex: message("GasOverheadConfig",
				scalarField("domain", 1, descpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("gas_overhead", 2, descpb.FieldDescriptorProto_TYPE_UINT64),
			),
			msgInitPaymasterIndex: message("MsgInitPaymaster",
				stringField("sender", 1),
				stringField("salt", 2),
				stringField("owner", 3),
				stringField("beneficiary", 4),
			),
			msgInitOverheadPaymasterIndex: message("MsgInitOverheadPaymaster",
				stringField("sender", 1),
				stringField("salt", 2),
				stringField("owner", 3),
				stringField("inner", 4),
			),
			msgPayForGasIndex: message("MsgPayForGas",
				stringField("sender", 1),
				stringField("paymaster", 2),
				stringField("message_id", 3),
				scalarField("destination_domain", 4, descpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("gas_amount", 5, descpb.FieldDescriptorProto_TYPE_UINT64),
				stringField("payment", 6),
			),
			msgClaimIndex: message("MsgClaim",
				stringField("sender", 1),
				stringField("paymaster", 2),
			),
			msgSetGasOracleConfigsIndex: message("MsgSetGasOracleConfigs",
				stringField("sender", 1),
				stringField("paymaster", 2),
				messageField("configs", 3, "GasOracleConfig", true),
			),
			msgSetDestinationGasOverheadsIndex: message("MsgSetDestinationGasOverheads",
				stringField("sender", 1),
				stringField("paymaster", 2),
				messageField("configs", 3, "GasOverheadConfig", true),
			),
			msgTransferPaymasterOwnershipIndex: message("MsgTransferPaymasterOwnership",
				stringField("sender", 1),
				stringField("paymaster", 2),
				stringField("new_owner", 3),
			),
			msgTransferOverheadPaymasterOwnershipIndex: message("MsgTransferOverheadPaymasterOwnership",
				stringField("sender", 1),
				stringField("overhead_paymaster", 2),
				stringField("new_owner", 3),
			),
			msgSetBeneficiaryIndex: message("MsgSetBeneficiary",
				stringField("sender", 1),
				stringField("paymaster", 2),
				stringField("beneficiary", 3),
			),
		},
	}
}

func message(name string, fields ...*descpb.FieldDescriptorProto) *descpb.DescriptorProto {
	return &descpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func stringField(name string, number int32) *descpb.FieldDescriptorProto {
	return scalarField(name, number, descpb.FieldDescriptorProto_TYPE_STRING)
}

func scalarField(name string, number int32, typ descpb.FieldDescriptorProto_Type) *descpb.FieldDescriptorProto {
	return &descpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, typeName string, repeated bool) *descpb.FieldDescriptorProto {
	field := scalarField(name, number, descpb.FieldDescriptorProto_TYPE_MESSAGE)
	field.TypeName = proto.String("." + ProtoPackage + "." + typeName)
	if repeated {
		field.Label = descpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	}

	return field
}

func mustGzipFileDescriptor(fd *descpb.FileDescriptorProto) []byte {
	bz, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		panic(err)
	}

	if _, err := zw.Write(bz); err != nil {
		panic(err)
	}

	if err := zw.Close(); err != nil {
		panic(err)
	}

	return buf.Bytes()
}

func yamlString(v interface{}) string {
	out, _ := yaml.Marshal(v)
	return string(out)
}

func (m *RemoteGasData) Reset()         { *m = RemoteGasData{} }
func (m *RemoteGasData) String() string { return yamlString(m) }
func (*RemoteGasData) ProtoMessage()    {}
func (*RemoteGasData) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{remoteGasDataIndex}
}

func (m *GasOracleConfig) Reset()         { *m = GasOracleConfig{} }
func (m *GasOracleConfig) String() string { return yamlString(m) }
func (*GasOracleConfig) ProtoMessage()    {}
func (*GasOracleConfig) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{gasOracleConfigIndex}
}

func (m *GasOverheadConfig) Reset()         { *m = GasOverheadConfig{} }
func (m *GasOverheadConfig) String() string { return yamlString(m) }
func (*GasOverheadConfig) ProtoMessage()    {}
func (*GasOverheadConfig) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{gasOverheadConfigIndex}
}

func (m *MsgInitPaymaster) Reset()         { *m = MsgInitPaymaster{} }
func (m *MsgInitPaymaster) String() string { return yamlString(m) }
func (*MsgInitPaymaster) ProtoMessage()    {}
func (*MsgInitPaymaster) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgInitPaymasterIndex}
}

func (m *MsgInitOverheadPaymaster) Reset()         { *m = MsgInitOverheadPaymaster{} }
func (m *MsgInitOverheadPaymaster) String() string { return yamlString(m) }
func (*MsgInitOverheadPaymaster) ProtoMessage()    {}
func (*MsgInitOverheadPaymaster) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgInitOverheadPaymasterIndex}
}

func (m *MsgPayForGas) Reset()         { *m = MsgPayForGas{} }
func (m *MsgPayForGas) String() string { return yamlString(m) }
func (*MsgPayForGas) ProtoMessage()    {}
func (*MsgPayForGas) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgPayForGasIndex}
}

func (m *MsgClaim) Reset()         { *m = MsgClaim{} }
func (m *MsgClaim) String() string { return yamlString(m) }
func (*MsgClaim) ProtoMessage()    {}
func (*MsgClaim) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgClaimIndex}
}

func (m *MsgSetGasOracleConfigs) Reset()         { *m = MsgSetGasOracleConfigs{} }
func (m *MsgSetGasOracleConfigs) String() string { return yamlString(m) }
func (*MsgSetGasOracleConfigs) ProtoMessage()    {}
func (*MsgSetGasOracleConfigs) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgSetGasOracleConfigsIndex}
}

func (m *MsgSetDestinationGasOverheads) Reset()         { *m = MsgSetDestinationGasOverheads{} }
func (m *MsgSetDestinationGasOverheads) String() string { return yamlString(m) }
func (*MsgSetDestinationGasOverheads) ProtoMessage()    {}
func (*MsgSetDestinationGasOverheads) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgSetDestinationGasOverheadsIndex}
}

func (m *MsgTransferPaymasterOwnership) Reset()         { *m = MsgTransferPaymasterOwnership{} }
func (m *MsgTransferPaymasterOwnership) String() string { return yamlString(m) }
func (*MsgTransferPaymasterOwnership) ProtoMessage()    {}
func (*MsgTransferPaymasterOwnership) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgTransferPaymasterOwnershipIndex}
}

func (m *MsgTransferOverheadPaymasterOwnership) Reset() {
	*m = MsgTransferOverheadPaymasterOwnership{}
}
func (m *MsgTransferOverheadPaymasterOwnership) String() string { return yamlString(m) }
func (*MsgTransferOverheadPaymasterOwnership) ProtoMessage()    {}
func (*MsgTransferOverheadPaymasterOwnership) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgTransferOverheadPaymasterOwnershipIndex}
}

func (m *MsgSetBeneficiary) Reset()         { *m = MsgSetBeneficiary{} }
func (m *MsgSetBeneficiary) String() string { return yamlString(m) }
func (*MsgSetBeneficiary) ProtoMessage()    {}
func (*MsgSetBeneficiary) Descriptor() ([]byte, []int) {
	return fileDescriptorIGP, []int{msgSetBeneficiaryIndex}
}
