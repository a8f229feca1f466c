// See codec.go for the Codec[T] contract every type below implements.
package datatype
